package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/edupanel/edu-admin-api/internal/models"
)

// AdminRepository provides database access for admin credentials.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new instance of AdminRepository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts a new admin. A duplicate email surfaces as a unique
// violation from the store.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO admins (id, email, password_hash, created_at) VALUES (:id, :email, :password_hash, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, admin); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

// FindByEmail returns an admin by exact email match.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	const query = `SELECT id, email, password_hash, created_at FROM admins WHERE email = $1 LIMIT 1`
	var admin models.Admin
	if err := r.db.GetContext(ctx, &admin, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	return &admin, nil
}

// Count returns the number of registered admins.
func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM admins`
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}
