package repository

import (
	"context"
	"strings"
	"time"

	"leadportaal/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// freelancerRepository implements FreelancerRepository on Postgres
type freelancerRepository struct {
	db *sqlx.DB
}

// NewFreelancerRepository creates a new FreelancerRepository instance
func NewFreelancerRepository(db *sqlx.DB) FreelancerRepository {
	return &freelancerRepository{db: db}
}

func (r *freelancerRepository) Create(ctx context.Context, freelancer *models.Freelancer) (*models.Freelancer, error) {
	freelancer.ID = uuid.New().String()
	freelancer.Email = strings.ToLower(strings.TrimSpace(freelancer.Email))
	if freelancer.Status == "" {
		freelancer.Status = models.FreelancerStatusAvailable
	}
	now := time.Now().UTC()
	freelancer.CreatedAt = now
	freelancer.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO freelancers (id, name, email, skills, experience,
			availability, rate, portfolio, status, created_at, updated_at)
		VALUES (:id, :name, :email, :skills, :experience,
			:availability, :rate, :portfolio, :status, :created_at, :updated_at)`, freelancer)
	if err != nil {
		return nil, translateError(err)
	}
	return freelancer, nil
}

func (r *freelancerRepository) Get(ctx context.Context, id string) (*models.Freelancer, error) {
	var freelancer models.Freelancer
	err := r.db.GetContext(ctx, &freelancer, `SELECT * FROM freelancers WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &freelancer, nil
}

func (r *freelancerRepository) List(ctx context.Context) ([]*models.Freelancer, error) {
	var freelancers []*models.Freelancer
	err := r.db.SelectContext(ctx, &freelancers, `SELECT * FROM freelancers ORDER BY created_at DESC`)
	if err != nil {
		return nil, translateError(err)
	}
	return freelancers, nil
}

func (r *freelancerRepository) UpdateStatus(ctx context.Context, id string, status models.FreelancerStatus) (*models.Freelancer, error) {
	var freelancer models.Freelancer
	err := r.db.GetContext(ctx, &freelancer, `
		UPDATE freelancers SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING *`, status, time.Now().UTC(), id)
	if err != nil {
		return nil, translateError(err)
	}
	return &freelancer, nil
}

func (r *freelancerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM freelancers WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *freelancerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM freelancers`)
	return count, translateError(err)
}
