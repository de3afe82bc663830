package app

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/nafees-s/tiket-api/api"
	"github.com/nafees-s/tiket-api/internal/domain"
	"github.com/nafees-s/tiket-api/internal/mocks"
	"golang.org/x/crypto/bcrypt"
)

func TestInitiatePasswordReset(t *testing.T) {
	tests := []struct {
		name             string
		input            api.PasswordResetRequest
		getByEmailFunc   func(context.Context, string) (*domain.User, error)
		tokenCreateFunc  func(context.Context, *domain.Token) error
		wantStatus       int
		wantErrMessage   string
		wantTokenCreated bool
	}{
		{
			name:  "reset requested for existing account",
			input: api.PasswordResetRequest{Email: "nafees@example.com"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return &domain.User{ID: 1, Email: email}, nil
			},
			tokenCreateFunc: func(ctx context.Context, token *domain.Token) error {
				return nil
			},
			wantStatus:       http.StatusAccepted,
			wantTokenCreated: true,
		},
		{
			name:  "unknown email gets the same response",
			input: api.PasswordResetRequest{Email: "stranger@example.com"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:  "token persistence failure",
			input: api.PasswordResetRequest{Email: "nafees@example.com"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return &domain.User{ID: 1, Email: email}, nil
			},
			tokenCreateFunc: func(ctx context.Context, token *domain.Token) error {
				return fmt.Errorf("database connection error")
			},
			wantStatus:       http.StatusInternalServerError,
			wantErrMessage:   ErrInternalServer,
			wantTokenCreated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenCreated := false

			app := newTestApplication(func(a *application) {
				a.userRepo = &mocks.MockUserRepo{GetByEmailFunc: tt.getByEmailFunc}
				a.tokenRepo = &mocks.MockTokenRepo{
					CreateFunc: func(ctx context.Context, token *domain.Token) error {
						tokenCreated = true
						return tt.tokenCreateFunc(ctx, token)
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/password-reset", tt.input)

			app.InitiatePasswordReset(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("InitiatePasswordReset() status = %v, want %v", got, tt.wantStatus)
			}

			if tokenCreated != tt.wantTokenCreated {
				t.Errorf("Token created = %v, want %v", tokenCreated, tt.wantTokenCreated)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestCompletePasswordReset(t *testing.T) {
	tests := []struct {
		name            string
		input           api.PasswordResetCompleteRequest
		getByTokenFunc  func(context.Context, []byte, string) (*domain.User, error)
		wantStatus      int
		wantErrMessage  string
		wantNewPassword string
	}{
		{
			name: "successful reset",
			input: api.PasswordResetCompleteRequest{
				Token:           "O8N3AqxZYwWDq2pXWZXM4yqpyoXKUYXzV5bV0z5dL5k",
				Password:        "NewPass1!",
				ConfirmPassword: "NewPass1!",
			},
			getByTokenFunc: func(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
				return &domain.User{ID: 1, Email: "nafees@example.com"}, nil
			},
			wantStatus:      http.StatusOK,
			wantNewPassword: "NewPass1!",
		},
		{
			name: "invalid or expired token",
			input: api.PasswordResetCompleteRequest{
				Token:           "invalid-token",
				Password:        "NewPass1!",
				ConfirmPassword: "NewPass1!",
			},
			getByTokenFunc: func(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name: "password confirmation mismatch",
			input: api.PasswordResetCompleteRequest{
				Token:           "O8N3AqxZYwWDq2pXWZXM4yqpyoXKUYXzV5bV0z5dL5k",
				Password:        "NewPass1!",
				ConfirmPassword: "Other1!xx",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var newHash []byte
			tokensDeleted := false

			app := newTestApplication(func(a *application) {
				a.userRepo = &mocks.MockUserRepo{
					GetByTokenFunc: tt.getByTokenFunc,
					UpdatePasswordFunc: func(ctx context.Context, id int, hash []byte) error {
						newHash = hash
						return nil
					},
				}
				a.tokenRepo = &mocks.MockTokenRepo{
					DeleteAllForUserFunc: func(ctx context.Context, scope string, userID int) error {
						tokensDeleted = true
						return nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodPut, "/password-reset", tt.input)

			app.CompletePasswordReset(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CompletePasswordReset() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				if err := bcrypt.CompareHashAndPassword(newHash, []byte(tt.wantNewPassword)); err != nil {
					t.Error("Persisted hash does not match the new password")
				}

				if !tokensDeleted {
					t.Error("Expected outstanding reset tokens to be deleted")
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
