package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nafees-s/tiket-api/api"
	"github.com/nafees-s/tiket-api/internal/domain"
)

const (
	otpTTL            = 5 * time.Minute
	otpResendCooldown = 60 * time.Second
)

func (app *application) RequestPhoneCode(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.OtpRequest

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

	code, err := domain.GenerateVerificationCode()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	verification := domain.Verification{
		ID:     uuid.NewString(),
		Phone:  input.Phone,
		Code:   code,
		Expiry: time.Now().Add(otpTTL),
	}

	err = app.verificationStore.Set(r.Context(), verification, otpTTL, otpResendCooldown)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVerificationThrottled):
			logger.Warn("verification code request throttled")
			app.errorResponse(w, r, http.StatusTooManyRequests, "Please wait before requesting another code")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.sms.Send(r.Context(), input.Phone, fmt.Sprintf("Your Tiket verification code is %s", code))
	if err != nil {
		logger.Error("failed to send verification code", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	// A new request replaces any handle from a previous one.
	app.sessionManager.Put(r.Context(), SessionKeyVerificationId.String(), verification.ID)

	resp := api.OtpRequestResponse{
		ExpiresAt:   verification.Expiry,
		ResendAfter: int(otpResendCooldown.Seconds()),
	}

	err = app.writeJSON(w, http.StatusAccepted, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ConfirmPhoneCode(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.OtpConfirmRequest

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

	verificationId := app.sessionManager.GetString(r.Context(), SessionKeyVerificationId.String())
	if verificationId == "" {
		app.badRequestResponse(w, r, domain.ErrVerificationMissing)
		return
	}

	verification, err := app.verificationStore.Get(r.Context(), verificationId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVerificationExpired):
			logger.Warn("verification code confirmation attempt after expiry")
			app.badRequestResponse(w, r, domain.ErrVerificationExpired)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if verification.Code != input.Code {
		logger.Warn("verification code mismatch")
		app.badRequestResponse(w, r, domain.ErrVerificationMismatch)
		return
	}

	err = app.verificationStore.Delete(r.Context(), verificationId)
	if err != nil {
		logger.Error("failed to delete used verification", "error", err)
	}

	user, err := app.userRepo.GetByPhone(r.Context(), verification.Phone)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			user, err = app.provisionPhoneUser(r, verification.Phone)
			if err != nil {
				app.serverErrorResponse(w, r, err)
				return
			}
		default:
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Remove(r.Context(), SessionKeyVerificationId.String())
	app.sessionManager.Put(r.Context(), SessionKeyUserId.String(), user.ID)

	resp := toApiUser(user)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// provisionPhoneUser creates the user row backing a first-time phone sign-in.
// The account gets an unguessable placeholder password; a usable one can be
// set later through the password reset flow.
func (app *application) provisionPhoneUser(r *http.Request, phone string) (*domain.User, error) {
	user := domain.User{
		Username: "Tiket User",
		Phone:    phone,
	}

	err := user.Password.Set(uuid.NewString())
	if err != nil {
		return nil, err
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
