package models

const (
	TypeLaunchRequest       = "LaunchRequest"
	TypeIntentRequest       = "IntentRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"

	Version = "1.0"

	SpeechTypePlainText = "PlainText"
	CardTypeSimple      = "Simple"
)

// Request is the inbound skill request envelope.
type Request struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Payload `json:"request"`
}

type Session struct {
	New         bool        `json:"new"`
	SessionID   string      `json:"sessionId"`
	Application Application `json:"application"`
	User        User        `json:"user"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID string `json:"userId"`
}

type Payload struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Intent    *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot value is empty when the platform could not fill it.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Response is the outbound envelope. Body is nil for bare acknowledgements.
type Response struct {
	Version           string            `json:"version"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
	Response          *ResponseBody     `json:"response,omitempty"`
}

type ResponseBody struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	Reprompt         *Reprompt    `json:"reprompt,omitempty"`
	ShouldEndSession bool         `json:"shouldEndSession"`
	Card             *Card        `json:"card,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
