package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/edupanel/edu-admin-api/internal/models"
	"github.com/edupanel/edu-admin-api/internal/repository"
	appErrors "github.com/edupanel/edu-admin-api/pkg/errors"
)

const studentListCacheKey = "students:list"

// emailPattern accepts the basic local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type studentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Delete(ctx context.Context, id string) error
	AssignCourse(ctx context.Context, studentID, courseID string) error
	UpsertMark(ctx context.Context, studentID, subject string, score int) error
	DeleteMarks(ctx context.Context, studentID, subject string) error
}

// CreateStudentRequest captures fields for creating a student.
type CreateStudentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AssignCourseRequest links a student to a course id.
type AssignCourseRequest struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
}

// UpsertMarkRequest sets the score for one subject. The score is stored as
// given: the browser form bounds it to 0-100, the service trusts its caller.
type UpsertMarkRequest struct {
	StudentID string `json:"studentId"`
	Subject   string `json:"subject"`
	Score     int    `json:"marks"`
}

// DeleteMarkRequest removes the mark for one subject.
type DeleteMarkRequest struct {
	StudentID string `json:"studentId"`
	Subject   string `json:"subject"`
}

// StudentService handles student workflows including course assignment and
// per-subject marks.
type StudentService struct {
	repo   studentRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewStudentService creates a new student service.
func NewStudentService(repo studentRepository, cache *CacheService, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, cache: cache, logger: logger}
}

// Add validates and persists a student. The email is lower-cased before the
// write; uniqueness is enforced by the store.
func (s *StudentService) Add(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Student name is required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Student email is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid email format")
	}

	student := &models.Student{Name: name, Email: strings.ToLower(email)}
	if err := s.repo.Create(ctx, student); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Student with this email already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}

	_ = s.cache.Invalidate(ctx, studentListCacheKey)
	return student, nil
}

// List returns all students with their course joined and marks attached.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	var cached []models.Student
	if hit, _ := s.cache.Get(ctx, studentListCacheKey, &cached); hit {
		return cached, nil
	}

	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}

	_ = s.cache.Set(ctx, studentListCacheKey, students, 0)
	return students, nil
}

// Remove deletes a student by id. Removing an unknown id succeeds.
func (s *StudentService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	_ = s.cache.Invalidate(ctx, studentListCacheKey)
	return nil
}

// AssignCourse stores the course reference on the student, overwriting any
// prior assignment. The course id is not checked against the course store:
// the reference is weak and a dangling id is accepted.
func (s *StudentService) AssignCourse(ctx context.Context, studentID, courseID string) error {
	if strings.TrimSpace(courseID) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Course id is required")
	}
	if _, err := s.findStudent(ctx, studentID); err != nil {
		return err
	}
	if err := s.repo.AssignCourse(ctx, studentID, courseID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign course")
	}
	_ = s.cache.Invalidate(ctx, studentListCacheKey)
	return nil
}

// AddOrUpdateMark upserts the score for the subject as one atomic store
// operation and returns the updated student.
func (s *StudentService) AddOrUpdateMark(ctx context.Context, req UpsertMarkRequest) (*models.Student, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Subject is required")
	}
	if _, err := s.findStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertMark(ctx, req.StudentID, subject, req.Score); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save mark")
	}
	_ = s.cache.Invalidate(ctx, studentListCacheKey)
	return s.findStudent(ctx, req.StudentID)
}

// RemoveMark deletes every mark matching the subject exactly and returns the
// updated student. Removing an absent subject succeeds.
func (s *StudentService) RemoveMark(ctx context.Context, req DeleteMarkRequest) (*models.Student, error) {
	if _, err := s.findStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteMarks(ctx, req.StudentID, req.Subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete marks")
	}
	_ = s.cache.Invalidate(ctx, studentListCacheKey)
	return s.findStudent(ctx, req.StudentID)
}

func (s *StudentService) findStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}
