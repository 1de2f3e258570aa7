package skill

import "bitbucket.org/sotavant/spicerack-skill/internal/models"

// ResponseIntent is what the skill wants to say, before it is put on the wire.
type ResponseIntent struct {
	CardTitle        string
	SpeechText       string
	RepromptText     string
	ShouldEndSession bool
}

// Render builds the outbound envelope. A card is attached only when CardTitle
// is set and repeats the spoken text.
func Render(ri ResponseIntent) *models.Response {
	body := &models.ResponseBody{
		OutputSpeech:     plainText(ri.SpeechText),
		ShouldEndSession: ri.ShouldEndSession,
	}

	if ri.RepromptText != "" {
		body.Reprompt = &models.Reprompt{OutputSpeech: plainText(ri.RepromptText)}
	}

	if ri.CardTitle != "" {
		body.Card = &models.Card{
			Type:    models.CardTypeSimple,
			Title:   ri.CardTitle,
			Content: ri.SpeechText,
		}
	}

	return &models.Response{
		Version:           models.Version,
		SessionAttributes: map[string]string{},
		Response:          body,
	}
}

func acknowledge() *models.Response {
	return &models.Response{
		Version:           models.Version,
		SessionAttributes: map[string]string{},
	}
}

func plainText(text string) models.OutputSpeech {
	return models.OutputSpeech{Type: models.SpeechTypePlainText, Text: text}
}
