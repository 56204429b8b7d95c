package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupanel/edu-admin-api/internal/models"
	appErrors "github.com/edupanel/edu-admin-api/pkg/errors"
)

type mockStudentRepo struct {
	students map[string]*models.Student
	marks    map[string]map[string]int
	order    []string
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{
		students: make(map[string]*models.Student),
		marks:    make(map[string]map[string]int),
	}
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	for _, existing := range m.students {
		if existing.Email == student.Email {
			return &pq.Error{Code: "23505"}
		}
	}
	if student.ID == "" {
		student.ID = "student-" + student.Email
	}
	clone := *student
	m.students[student.ID] = &clone
	m.order = append(m.order, student.ID)
	return nil
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	students := make([]models.Student, 0, len(m.order))
	for _, id := range m.order {
		s, err := m.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, nil
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	student, ok := m.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := *student
	out.Marks = []models.Mark{}
	for subject, score := range m.marks[id] {
		out.Marks = append(out.Marks, models.Mark{StudentID: id, Subject: subject, Score: score})
	}
	return &out, nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id string) error {
	delete(m.students, id)
	delete(m.marks, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockStudentRepo) AssignCourse(ctx context.Context, studentID, courseID string) error {
	if student, ok := m.students[studentID]; ok {
		student.CourseID = &courseID
	}
	return nil
}

func (m *mockStudentRepo) UpsertMark(ctx context.Context, studentID, subject string, score int) error {
	if m.marks[studentID] == nil {
		m.marks[studentID] = make(map[string]int)
	}
	m.marks[studentID][subject] = score
	return nil
}

func (m *mockStudentRepo) DeleteMarks(ctx context.Context, studentID, subject string) error {
	delete(m.marks[studentID], subject)
	return nil
}

func TestStudentServiceAddLowercasesEmail(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, nil, nil)

	student, err := svc.Add(context.Background(), CreateStudentRequest{Name: "Bob", Email: "BOB@Example.COM"})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", student.Email)
}

func TestStudentServiceAddValidation(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), nil, nil)

	cases := []struct {
		req     CreateStudentRequest
		message string
	}{
		{CreateStudentRequest{Name: "  ", Email: "bob@example.com"}, "Student name is required"},
		{CreateStudentRequest{Name: "Bob", Email: ""}, "Student email is required"},
		{CreateStudentRequest{Name: "Bob", Email: "not-an-email"}, "Invalid email format"},
		{CreateStudentRequest{Name: "Bob", Email: "two words@example.com"}, "Invalid email format"},
		{CreateStudentRequest{Name: "Bob", Email: "bob@nodot"}, "Invalid email format"},
	}
	for _, tc := range cases {
		_, err := svc.Add(context.Background(), tc.req)
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
		assert.Equal(t, tc.message, appErr.Message)
	}
}

func TestStudentServiceAddDuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, nil, nil)

	_, err := svc.Add(context.Background(), CreateStudentRequest{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)

	// Lower-casing happens before the store sees the email, so the mixed-case
	// duplicate collides with the first row.
	_, err = svc.Add(context.Background(), CreateStudentRequest{Name: "Bobby", Email: "BOB@X.com"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, "Student with this email already exists", appErr.Message)
}

func TestStudentServiceAssignCourse(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, nil, nil)

	student, err := svc.Add(context.Background(), CreateStudentRequest{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)

	// The course reference is weak, a dangling id is accepted.
	err = svc.AssignCourse(context.Background(), student.ID, "no-such-course")
	require.NoError(t, err)
	require.NotNil(t, repo.students[student.ID].CourseID)
	assert.Equal(t, "no-such-course", *repo.students[student.ID].CourseID)
}

func TestStudentServiceAssignCourseValidation(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, nil, nil)

	err := svc.AssignCourse(context.Background(), "any", "  ")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "Course id is required", appErr.Message)

	err = svc.AssignCourse(context.Background(), "unknown-student", "course-1")
	require.Error(t, err)
	appErr = appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "Student not found", appErr.Message)
}

func TestStudentServiceUpsertMarkReplacesScore(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, nil, nil)

	created, err := svc.Add(context.Background(), CreateStudentRequest{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)

	student, err := svc.AddOrUpdateMark(context.Background(), UpsertMarkRequest{StudentID: created.ID, Subject: "Math", Score: 80})
	require.NoError(t, err)
	require.Len(t, student.Marks, 1)
	assert.Equal(t, 80, student.Marks[0].Score)

	student, err = svc.AddOrUpdateMark(context.Background(), UpsertMarkRequest{StudentID: created.ID, Subject: "Math", Score: 95})
	require.NoError(t, err)
	require.Len(t, student.Marks, 1)
	assert.Equal(t, "Math", student.Marks[0].Subject)
	assert.Equal(t, 95, student.Marks[0].Score)
}

func TestStudentServiceUpsertMarkValidation(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, nil, nil)

	_, err := svc.AddOrUpdateMark(context.Background(), UpsertMarkRequest{StudentID: "any", Subject: "   ", Score: 50})
	require.Error(t, err)
	assert.Equal(t, "Subject is required", appErrors.FromError(err).Message)

	_, err = svc.AddOrUpdateMark(context.Background(), UpsertMarkRequest{StudentID: "unknown", Subject: "Math", Score: 50})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceRemoveMark(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, nil, nil)

	created, err := svc.Add(context.Background(), CreateStudentRequest{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)

	_, err = svc.AddOrUpdateMark(context.Background(), UpsertMarkRequest{StudentID: created.ID, Subject: "Math", Score: 80})
	require.NoError(t, err)
	_, err = svc.AddOrUpdateMark(context.Background(), UpsertMarkRequest{StudentID: created.ID, Subject: "Science", Score: 70})
	require.NoError(t, err)

	student, err := svc.RemoveMark(context.Background(), DeleteMarkRequest{StudentID: created.ID, Subject: "Math"})
	require.NoError(t, err)
	require.Len(t, student.Marks, 1)
	assert.Equal(t, "Science", student.Marks[0].Subject)

	// Removing an absent subject succeeds and leaves the rest untouched.
	student, err = svc.RemoveMark(context.Background(), DeleteMarkRequest{StudentID: created.ID, Subject: "History"})
	require.NoError(t, err)
	assert.Len(t, student.Marks, 1)
}

func TestStudentServiceRemoveMarkUnknownStudent(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), nil, nil)

	_, err := svc.RemoveMark(context.Background(), DeleteMarkRequest{StudentID: "unknown", Subject: "Math"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
