package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nafees-s/tiket-api/internal/domain"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, email, phone, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version`

	err := p.db.QueryRow(ctx,
		query,
		user.Username,
		user.Email,
		user.Phone,
		user.Password.Hash).Scan(&user.ID, &user.CreatedAt, &user.Version)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrUserAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, username, email, phone, password_hash, profile_image_url, created_at, updated_at, version
		FROM users
		WHERE email = $1 AND email <> ''`

	return p.getOne(ctx, query, email)
}

func (p *PostgresUserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	query := `SELECT id, username, email, phone, password_hash, profile_image_url, created_at, updated_at, version
		FROM users
		WHERE phone = $1 AND phone <> ''`

	return p.getOne(ctx, query, phone)
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT id, username, email, phone, password_hash, profile_image_url, created_at, updated_at, version
		FROM users
		WHERE id = $1`

	return p.getOne(ctx, query, id)
}

func (p *PostgresUserRepository) GetByToken(
	ctx context.Context,
	tokenHash []byte,
	tokenScope string) (*domain.User, error) {

	query := `SELECT u.id, u.username, u.email, u.phone, u.password_hash, u.profile_image_url, u.created_at, u.updated_at, u.version
		FROM users u
		JOIN tokens t ON u.id = t.user_id
		WHERE t.hash = $1 AND t.scope = $2 AND t.expiry > $3`

	return p.getOne(ctx, query, tokenHash, tokenScope, time.Now())
}

func (p *PostgresUserRepository) getOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var user domain.User
	var hash []byte

	err := p.db.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Phone,
		&hash,
		&user.ProfileImageURL,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Version,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	user.Password.Hash = hash

	return &user, nil
}

func (p *PostgresUserRepository) UpdateUsername(ctx context.Context, userId int, username string) error {
	return p.updateField(ctx, userId, `username = $1`, username)
}

func (p *PostgresUserRepository) UpdateEmail(ctx context.Context, userId int, email string) error {
	err := p.updateField(ctx, userId, `email = $1`, email)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return domain.ErrUserAlreadyExists
	}

	return err
}

func (p *PostgresUserRepository) UpdatePassword(ctx context.Context, userId int, passwordHash []byte) error {
	return p.updateField(ctx, userId, `password_hash = $1`, passwordHash)
}

func (p *PostgresUserRepository) UpdateProfileImageURL(ctx context.Context, userId int, url string) error {
	return p.updateField(ctx, userId, `profile_image_url = $1`, url)
}

// updateField overwrites a single column. Profile edits deliberately issue
// one statement per changed field, so each field succeeds or fails on its
// own; concurrent edits are last-write-wins.
func (p *PostgresUserRepository) updateField(ctx context.Context, userId int, assignment string, value any) error {
	query := `UPDATE users SET ` + assignment + `, updated_at = now(), version = version + 1 WHERE id = $2`

	tag, err := p.db.Exec(ctx, query, value, userId)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
