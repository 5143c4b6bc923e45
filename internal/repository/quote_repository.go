package repository

import (
	"context"
	"strings"
	"time"

	"leadportaal/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// quoteRepository implements QuoteRepository on Postgres
type quoteRepository struct {
	db *sqlx.DB
}

// NewQuoteRepository creates a new QuoteRepository instance
func NewQuoteRepository(db *sqlx.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	quote.ID = uuid.New().String()
	quote.Email = strings.ToLower(strings.TrimSpace(quote.Email))
	if quote.Status == "" {
		quote.Status = models.QuoteStatusNew
	}
	now := time.Now().UTC()
	quote.CreatedAt = now
	quote.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO quotes (id, website_type, features, budget, timeline,
			company_name, contact_person, email, phone, additional_info,
			status, created_at, updated_at)
		VALUES (:id, :website_type, :features, :budget, :timeline,
			:company_name, :contact_person, :email, :phone, :additional_info,
			:status, :created_at, :updated_at)`, quote)
	if err != nil {
		return nil, translateError(err)
	}
	return quote, nil
}

func (r *quoteRepository) Get(ctx context.Context, id string) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.GetContext(ctx, &quote, `SELECT * FROM quotes WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &quote, nil
}

func (r *quoteRepository) List(ctx context.Context) ([]*models.Quote, error) {
	var quotes []*models.Quote
	err := r.db.SelectContext(ctx, &quotes, `SELECT * FROM quotes ORDER BY created_at DESC`)
	if err != nil {
		return nil, translateError(err)
	}
	return quotes, nil
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.GetContext(ctx, &quote, `
		UPDATE quotes SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING *`, status, time.Now().UTC(), id)
	if err != nil {
		return nil, translateError(err)
	}
	return &quote, nil
}

func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *quoteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quotes`)
	return count, translateError(err)
}

func (r *quoteRepository) CountByStatus(ctx context.Context, status models.QuoteStatus) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quotes WHERE status = $1`, status)
	return count, translateError(err)
}
