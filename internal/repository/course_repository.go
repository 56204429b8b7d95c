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

// CourseRepository handles persistence for courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new repository instance.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create persists a new course. Course name uniqueness is enforced by the
// store's unique index; a duplicate surfaces as a unique violation.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	if course.Subjects == nil {
		course.Subjects = []string{}
	}

	const query = `INSERT INTO courses (id, course_name, description, duration, subjects, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query, course.ID, course.CourseName, course.Description, course.Duration, course.Subjects, course.CreatedAt); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// List returns all courses in insertion order.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT id, course_name, description, duration, subjects, created_at FROM courses ORDER BY created_at ASC`
	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID returns a course by id.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	const query = `SELECT id, course_name, description, duration, subjects, created_at FROM courses WHERE id = $1 LIMIT 1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find course by id: %w", err)
	}
	return &course, nil
}

// Delete removes a course record. Deleting an unknown id is a no-op; student
// references are left untouched.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}
