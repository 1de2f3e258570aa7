package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/spicerack-skill/internal/logger"
	"bitbucket.org/sotavant/spicerack-skill/internal/models"
	"bitbucket.org/sotavant/spicerack-skill/internal/skill"
	"bitbucket.org/sotavant/spicerack-skill/internal/store"
)

type app struct {
	router *skill.Router
}

func newApp(r *skill.Router) *app {
	return &app{router: r}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.Request
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp, err := a.router.Handle(ctx, skill.NewRequest(req))
	if err != nil {
		status := statusFor(err)
		logger.Log.Debug("request failed",
			zap.String("type", req.Request.Type),
			zap.String("request_id", req.Request.RequestID),
			zap.Int("status", status),
			zap.Error(err),
		)
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, skill.ErrInvalidApplication):
		return http.StatusForbidden
	case errors.Is(err, skill.ErrUnknownRequestType), errors.Is(err, skill.ErrUnsupportedIntent):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
