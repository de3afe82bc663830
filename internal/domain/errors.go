package domain

import "errors"

var (
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrRecordNotFound        = errors.New("record not found")
	ErrEditConflict          = errors.New("edit conflict")
	ErrVerificationMissing   = errors.New("verification ID missing, please request a new code")
	ErrVerificationExpired   = errors.New("verification code has expired, please request a new code")
	ErrVerificationMismatch  = errors.New("incorrect verification code")
	ErrVerificationThrottled = errors.New("a code was sent recently, please wait before requesting another")
	ErrSelectionNotFound     = errors.New("no seat selection found or it has expired")
	ErrUnknownTimeSlot       = errors.New("time must be one of the scheduled show times")
	ErrUnknownSeat           = errors.New("seat is not part of the hall layout")
)
