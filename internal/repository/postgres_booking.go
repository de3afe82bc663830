package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nafees-s/tiket-api/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create persists the payment and its booking atomically. A booking is never
// written without its payment row, and a failed write surfaces to the caller
// instead of silently dropping the booking.
func (p *PostgresBookingRepository) Create(
	ctx context.Context,
	booking *domain.Booking,
	payment *domain.Payment) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO payments (user_id, reference, amount, currency, method, status, payment_date)
			VALUES ($1, $2, $3, $4, $5, $6, now())
			RETURNING id, created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			payment.UserID,
			payment.Reference,
			payment.Amount,
			payment.Currency,
			payment.Method,
			payment.Status).Scan(&payment.ID, &payment.CreatedAt)

		if err != nil {
			return err
		}

		query = `
			INSERT INTO bookings (user_id, payment_id, item_id, title, kind, show_date, show_time, seats, amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at
		`

		booking.PaymentID = payment.ID

		return tx.QueryRow(
			ctx,
			query,
			booking.UserID,
			payment.ID,
			booking.ItemID,
			booking.Title,
			booking.Kind,
			booking.Date,
			booking.Time,
			booking.Seats,
			booking.Amount).Scan(&booking.ID, &booking.CreatedAt)
	})
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func (p *PostgresBookingRepository) GetByIdAndUserId(ctx context.Context, id, userId int) (*domain.Booking, error) {
	query := `
		SELECT id, user_id, payment_id, item_id, title, kind, show_date, show_time, seats, amount, created_at
		FROM bookings
		WHERE id = $1 AND user_id = $2
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id, userId).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.PaymentID,
		&booking.ItemID,
		&booking.Title,
		&booking.Kind,
		&booking.Date,
		&booking.Time,
		&booking.Seats,
		&booking.Amount,
		&booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, user_id, payment_id, item_id, title, kind, show_date, show_time, seats, amount, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&totalRecords,
			&booking.ID,
			&booking.UserID,
			&booking.PaymentID,
			&booking.ItemID,
			&booking.Title,
			&booking.Kind,
			&booking.Date,
			&booking.Time,
			&booking.Seats,
			&booking.Amount,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}
