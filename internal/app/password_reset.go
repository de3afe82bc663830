package app

import (
	"context"
	"crypto/sha256"
	"errors"
	"net/http"
	"time"

	"github.com/nafees-s/tiket-api/api"
	"github.com/nafees-s/tiket-api/internal/domain"
)

const passwordResetTokenTTL = 45 * time.Minute

func (app *application) InitiatePasswordReset(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.PasswordResetRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	// The response is identical whether or not the address belongs to an
	// account, to avoid user enumeration.
	resp := api.MessageResponse{
		Message: "If the address belongs to an account, an email will be sent with reset instructions",
	}

	user, err := app.userRepo.GetByEmail(r.Context(), input.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("password reset requested for non-existent email")

			err = app.writeJSON(w, http.StatusAccepted, resp, nil)
			if err != nil {
				app.serverErrorResponse(w, r, err)
			}
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	token, err := domain.GenerateToken(int64(user.ID), passwordResetTokenTTL, domain.PasswordResetScope)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.tokenRepo.Create(r.Context(), token)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	go func(ctx context.Context) {
		gLogger := app.contextGetLogger(r.WithContext(ctx))

		defer func() {
			if err := recover(); err != nil {
				gLogger.Error("panic occurred during sending password reset mail", "panic", err)
			}
		}()

		data := map[string]any{
			"passwordResetToken": token.Plaintext,
		}

		err := app.mailer.Send(user.Email, "password_reset.tmpl", data)
		if err != nil {
			gLogger.Error("failed to send password reset email", "error", err)
		}
	}(context.WithoutCancel(r.Context()))

	err = app.writeJSON(w, http.StatusAccepted, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CompletePasswordReset(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.PasswordResetCompleteRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	hash := sha256.Sum256([]byte(input.Token))

	user, err := app.userRepo.GetByToken(r.Context(), hash[:], domain.PasswordResetScope)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("password reset attempt with invalid or expired token")
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = user.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.UpdatePassword(r.Context(), user.ID, user.Password.Hash)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.tokenRepo.DeleteAllForUser(r.Context(), domain.PasswordResetScope, user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MessageResponse{
		Message: "Your password was successfully reset",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
