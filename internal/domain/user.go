package domain

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID              int
	Username        string
	Email           string
	Phone           string
	Password        password
	ProfileImageURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int
}

type password struct {
	plaintext *string
	Hash      []byte
}

func (p *password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}

	p.plaintext = &plaintext
	p.Hash = hash

	return nil
}

func (p *password) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	GetById(ctx context.Context, id int) (*User, error)
	GetByToken(ctx context.Context, tokenHash []byte, tokenScope string) (*User, error)
	UpdateUsername(ctx context.Context, userId int, username string) error
	UpdateEmail(ctx context.Context, userId int, email string) error
	UpdatePassword(ctx context.Context, userId int, passwordHash []byte) error
	UpdateProfileImageURL(ctx context.Context, userId int, url string) error
}
