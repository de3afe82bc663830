package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

type sessionKey string

const (
	SessionKeyUserId         = sessionKey("userID")
	SessionKeyGuest          = sessionKey("guest")
	SessionKeyVerificationId = sessionKey("verificationID")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

func (app *application) contextGetLogger(r *http.Request) *slog.Logger {
	return app.logger.With("requestId", middleware.GetReqID(r.Context()))
}
