package skill

import (
	"errors"

	"bitbucket.org/sotavant/spicerack-skill/internal/models"
)

var (
	ErrInvalidApplication = errors.New("invalid application id")
	ErrUnknownRequestType = errors.New("unknown request type")
	ErrUnsupportedIntent  = errors.New("unsupported intent")
)

type RequestType int

const (
	RequestTypeUnknown RequestType = iota
	RequestTypeLaunch
	RequestTypeIntent
	RequestTypeSessionEnded
)

func (t RequestType) String() string {
	switch t {
	case RequestTypeLaunch:
		return models.TypeLaunchRequest
	case RequestTypeIntent:
		return models.TypeIntentRequest
	case RequestTypeSessionEnded:
		return models.TypeSessionEndedRequest
	}
	return "Unknown"
}

// Request is one inbound event, already decoded from the wire.
type Request struct {
	ApplicationID string
	Type          RequestType
	SessionNew    bool
	UserID        string
	RequestID     string
	IntentName    string
	// Slots holds only slots that carry a value.
	Slots map[string]string
}

// NewRequest flattens the wire envelope. Unrecognised request types map to
// RequestTypeUnknown and are rejected by the Router.
func NewRequest(r models.Request) Request {
	req := Request{
		ApplicationID: r.Session.Application.ApplicationID,
		SessionNew:    r.Session.New,
		UserID:        r.Session.User.UserID,
		RequestID:     r.Request.RequestID,
		Slots:         map[string]string{},
	}

	switch r.Request.Type {
	case models.TypeLaunchRequest:
		req.Type = RequestTypeLaunch
	case models.TypeIntentRequest:
		req.Type = RequestTypeIntent
	case models.TypeSessionEndedRequest:
		req.Type = RequestTypeSessionEnded
	}

	if r.Request.Intent != nil {
		req.IntentName = r.Request.Intent.Name
		for name, slot := range r.Request.Intent.Slots {
			if slot.Value != "" {
				req.Slots[name] = slot.Value
			}
		}
	}
	return req
}
