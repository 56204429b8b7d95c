package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/edupanel/edu-admin-api/internal/models"
	"github.com/edupanel/edu-admin-api/internal/repository"
	appErrors "github.com/edupanel/edu-admin-api/pkg/errors"
)

const courseListCacheKey = "courses:list"

type courseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context) ([]models.Course, error)
	Delete(ctx context.Context, id string) error
}

// CreateCourseRequest captures fields for creating a course. Duration arrives
// as a JSON number; a non-numeric value is rejected at binding time.
type CreateCourseRequest struct {
	CourseName  string   `json:"courseName"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	Subjects    []string `json:"subjects"`
}

// CourseService handles course workflows.
type CourseService struct {
	repo   courseRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewCourseService creates a new course service.
func NewCourseService(repo courseRepository, cache *CacheService, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, cache: cache, logger: logger}
}

// Add validates and persists a course. Name uniqueness is left to the store;
// its rejection is translated into a conflict.
func (s *CourseService) Add(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	name := strings.TrimSpace(req.CourseName)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Course name is required")
	}
	if req.Duration < 1 || req.Duration > 48 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Valid duration (in months) is required (1 - 48)")
	}

	subjects := make([]string, 0, len(req.Subjects))
	for _, subject := range req.Subjects {
		if trimmed := strings.TrimSpace(subject); trimmed != "" {
			subjects = append(subjects, trimmed)
		}
	}

	course := &models.Course{
		CourseName:  name,
		Description: strings.TrimSpace(req.Description),
		Duration:    req.Duration,
		Subjects:    subjects,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Course with this name already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}

	_ = s.cache.Invalidate(ctx, courseListCacheKey)
	return course, nil
}

// List returns all courses in insertion order.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	var cached []models.Course
	if hit, _ := s.cache.Get(ctx, courseListCacheKey, &cached); hit {
		return cached, nil
	}

	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	_ = s.cache.Set(ctx, courseListCacheKey, courses, 0)
	return courses, nil
}

// Remove deletes a course by id. Removing an unknown id succeeds; student
// references to the course are intentionally left dangling.
func (s *CourseService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	_ = s.cache.Invalidate(ctx, courseListCacheKey)
	// student list responses embed the joined course, so they go stale too
	_ = s.cache.Invalidate(ctx, studentListCacheKey)
	return nil
}
