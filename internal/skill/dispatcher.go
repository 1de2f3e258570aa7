package skill

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/spicerack-skill/internal/logger"
	"bitbucket.org/sotavant/spicerack-skill/internal/store"
)

const (
	IntentGetSpiceLocation = "GetSpiceLocation"
	IntentSetSpiceLocation = "SetSpiceLocation"
	IntentHelp             = "AMAZON.HelpIntent"
	IntentCancel           = "AMAZON.CancelIntent"
	IntentStop             = "AMAZON.StopIntent"

	SlotSpice  = "spice"
	SlotRow    = "row"
	SlotColumn = "column"

	welcomeReprompt = "Tell me where the first bottle is."
)

// Dispatcher maps an intent to at most one store call and a ResponseIntent.
type Dispatcher struct {
	store          store.Store
	skillName      string
	invocationName string
}

func NewDispatcher(s store.Store, skillName, invocationName string) *Dispatcher {
	return &Dispatcher{
		store:          s,
		skillName:      skillName,
		invocationName: invocationName,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, userID, intentName string, slots map[string]string) (ResponseIntent, error) {
	logger.Log.Debug("dispatching intent", zap.String("intent", intentName))

	switch intentName {
	case IntentGetSpiceLocation:
		return d.getSpiceLocation(ctx, userID, slots)
	case IntentSetSpiceLocation:
		return d.setSpiceLocation(ctx, userID, slots)
	case IntentHelp:
		return d.Welcome(), nil
	case IntentCancel, IntentStop:
		return d.Farewell(), nil
	}
	return ResponseIntent{}, fmt.Errorf("%w: %q", ErrUnsupportedIntent, intentName)
}

func (d *Dispatcher) Welcome() ResponseIntent {
	return ResponseIntent{
		CardTitle: d.skillName,
		SpeechText: "Welcome to " + d.skillName + ". \n" +
			"Try: Tell " + d.invocationName + " the cumin is on row 2, column 4. " +
			"Or try: Ask " + d.invocationName + " for the cumin.",
		RepromptText:     welcomeReprompt,
		ShouldEndSession: true,
	}
}

func (d *Dispatcher) Farewell() ResponseIntent {
	return ResponseIntent{
		SpeechText:       "Thanks for using " + d.skillName + ".",
		ShouldEndSession: true,
	}
}

func (d *Dispatcher) getSpiceLocation(ctx context.Context, userID string, slots map[string]string) (ResponseIntent, error) {
	spice := slots[SlotSpice]
	if spice == "" {
		logger.Log.Debug("get without spice slot, nothing to say")
		return ResponseIntent{ShouldEndSession: true}, nil
	}

	rec, err := d.store.GetSpice(ctx, userID, spice)
	if err != nil {
		return ResponseIntent{}, fmt.Errorf("recall %q: %w", spice, err)
	}

	return ResponseIntent{
		SpeechText:       spiceSentence(spice, rec.Row, rec.Column),
		ShouldEndSession: true,
	}, nil
}

func (d *Dispatcher) setSpiceLocation(ctx context.Context, userID string, slots map[string]string) (ResponseIntent, error) {
	spice, row, column := slots[SlotSpice], slots[SlotRow], slots[SlotColumn]
	if spice == "" || row == "" || column == "" {
		logger.Log.Debug("partial set ignored",
			zap.Bool("spice", spice != ""),
			zap.Bool("row", row != ""),
			zap.Bool("column", column != ""),
		)
		return ResponseIntent{ShouldEndSession: true}, nil
	}

	err := d.store.PutSpice(ctx, store.SpiceRecord{
		OwnerID:   userID,
		SpiceName: spice,
		Row:       row,
		Column:    column,
	})
	if err != nil {
		return ResponseIntent{}, fmt.Errorf("store %q: %w", spice, err)
	}

	return ResponseIntent{
		SpeechText:       spiceSentence(spice, row, column),
		ShouldEndSession: true,
	}, nil
}

func spiceSentence(spice, row, column string) string {
	return fmt.Sprintf("%s is on row %s, column %s.", spice, row, column)
}
