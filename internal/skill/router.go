package skill

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/spicerack-skill/internal/logger"
	"bitbucket.org/sotavant/spicerack-skill/internal/models"
)

// Router validates a Request and routes it by type.
type Router struct {
	appID      string
	dispatcher *Dispatcher
}

// NewRouter returns a Router that only accepts requests for appID.
// An empty appID accepts any application.
func NewRouter(appID string, d *Dispatcher) *Router {
	return &Router{appID: appID, dispatcher: d}
}

func (r *Router) Handle(ctx context.Context, req Request) (*models.Response, error) {
	if r.appID != "" && req.ApplicationID != r.appID {
		return nil, fmt.Errorf("%w: %q", ErrInvalidApplication, req.ApplicationID)
	}

	if req.SessionNew {
		r.onSessionStarted(req)
	}

	switch req.Type {
	case RequestTypeLaunch:
		return Render(r.dispatcher.Welcome()), nil
	case RequestTypeIntent:
		ri, err := r.dispatcher.Dispatch(ctx, req.UserID, req.IntentName, req.Slots)
		if err != nil {
			return nil, err
		}
		return Render(ri), nil
	case RequestTypeSessionEnded:
		logger.Log.Debug("session ended", zap.String("request_id", req.RequestID))
		return acknowledge(), nil
	}
	return nil, ErrUnknownRequestType
}

// onSessionStarted is the hook for per-session setup. Nothing needs it yet.
func (r *Router) onSessionStarted(req Request) {
	logger.Log.Debug("session started", zap.String("request_id", req.RequestID))
}
