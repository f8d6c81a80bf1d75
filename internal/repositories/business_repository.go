package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Johnmalala/fedhaplus-sub001/internal/models"

	"github.com/google/uuid"
)

// BusinessRepository defines the interface for business lookups.
type BusinessRepository interface {
	GetBusinessByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
}

type businessRepository struct {
	db *sql.DB
}

// NewBusinessRepository creates a new instance of BusinessRepository.
func NewBusinessRepository(db *sql.DB) BusinessRepository {
	return &businessRepository{db: db}
}

// GetBusinessByID retrieves a business by its ID.
func (r *businessRepository) GetBusinessByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	business := &models.Business{}
	query := `SELECT id, name, business_type, created_at, updated_at
	          FROM businesses WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&business.ID, &business.Name, &business.BusinessType,
		&business.CreatedAt, &business.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting business %s: %v", ErrDatabaseError, id, err)
	}
	return business, nil
}
