package app

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"github.com/nafees-s/tiket-api/api"
	"github.com/nafees-s/tiket-api/internal/domain"
)

const maxPhotoBytes = 5 << 20

func (app *application) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiUser(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateUser applies each submitted field on its own. A field that fails
// leaves the others in place; the response lists the outcome per field and
// carries the last error message.
func (app *application) UpdateUser(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.UpdateUserRequest

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

	if input.Username == nil && input.Email == nil && input.Password == nil {
		app.badRequestResponse(w, r, fmt.Errorf("no fields to update"))
		return
	}

	userId := app.contextGetUserId(r)

	var outcomes []api.FieldOutcome
	var lastError string

	record := func(field string, err error) {
		outcome := api.FieldOutcome{Field: field, Updated: err == nil}

		if err != nil {
			outcome.Error = err.Error()
			lastError = err.Error()
			logger.Warn("profile field update failed", "field", field, "error", err)
		}

		outcomes = append(outcomes, outcome)
	}

	if input.Username != nil {
		record("username", app.updateUsername(r, userId, *input.Username))
	}

	if input.Email != nil {
		record("email", app.updateEmail(r, userId, *input.Email))
	}

	if input.Password != nil {
		record("password", app.updatePassword(r, userId, input.Password))
	}

	resp := api.UpdateUserResponse{
		Outcomes: outcomes,
		Message:  lastError,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateUsername(r *http.Request, userId int, username string) error {
	err := app.userRepo.UpdateUsername(r.Context(), userId, username)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("user not found")
		}

		return fmt.Errorf("could not update username")
	}

	return nil
}

func (app *application) updateEmail(r *http.Request, userId int, email string) error {
	err := app.userRepo.UpdateEmail(r.Context(), userId, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return fmt.Errorf("email is already in use")
		case errors.Is(err, domain.ErrRecordNotFound):
			return fmt.Errorf("user not found")
		default:
			return fmt.Errorf("could not update email")
		}
	}

	return nil
}

func (app *application) updatePassword(r *http.Request, userId int, change *api.PasswordChange) error {
	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		return fmt.Errorf("could not update password")
	}

	match, err := user.Password.Matches(change.Current)
	if err != nil {
		return fmt.Errorf("could not update password")
	}

	if !match {
		return fmt.Errorf("current password is incorrect")
	}

	err = user.Password.Set(change.New)
	if err != nil {
		return fmt.Errorf("could not update password")
	}

	err = app.userRepo.UpdatePassword(r.Context(), userId, user.Password.Hash)
	if err != nil {
		return fmt.Errorf("could not update password")
	}

	return nil
}

func (app *application) UploadProfilePhoto(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	err := r.ParseMultipartForm(maxPhotoBytes)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("could not parse multipart form"))
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("missing photo file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// Reject payloads that are not decodable images before persisting
	// anything.
	_, _, err = image.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Warn("profile photo rejected", "error", err)
		app.badRequestResponse(w, r, fmt.Errorf("invalid image data"))
		return
	}

	userId := app.contextGetUserId(r)

	key := fmt.Sprintf("profileImages/%d.jpg", userId)

	url, err := app.blob.Put(r.Context(), key, bytes.NewReader(data))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.UpdateProfileImageURL(r.Context(), userId, url)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UploadPhotoResponse{
		ProfileImageUrl: url,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
