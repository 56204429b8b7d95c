package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/edupanel/edu-admin-api/internal/middleware"
	"github.com/edupanel/edu-admin-api/internal/models"
	"github.com/edupanel/edu-admin-api/internal/service"
)

type fakeAdminRepo struct {
	admins map[string]models.Admin
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	if f.admins == nil {
		f.admins = make(map[string]models.Admin)
	}
	if _, ok := f.admins[admin.Email]; ok {
		return &pq.Error{Code: "23505"}
	}
	if admin.ID == "" {
		admin.ID = "admin-1"
	}
	f.admins[admin.Email] = *admin
	return nil
}

func (f *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if admin, ok := f.admins[email]; ok {
		return &admin, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeAdminRepo) Count(ctx context.Context) (int, error) {
	return len(f.admins), nil
}

type fakeCourseRepo struct {
	courses []models.Course
	nextID  int
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	for _, existing := range f.courses {
		if existing.CourseName == course.CourseName {
			return &pq.Error{Code: "23505"}
		}
	}
	f.nextID++
	course.ID = "course-" + strconv.Itoa(f.nextID)
	course.CreatedAt = time.Now().UTC()
	f.courses = append(f.courses, *course)
	return nil
}

func (f *fakeCourseRepo) List(ctx context.Context) ([]models.Course, error) {
	out := make([]models.Course, len(f.courses))
	copy(out, f.courses)
	return out, nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id string) error {
	for i, course := range f.courses {
		if course.ID == id {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			break
		}
	}
	return nil
}

type fakeStudentRepo struct {
	students map[string]*models.Student
	marks    map[string]map[string]int
	order    []string
	nextID   int
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{
		students: make(map[string]*models.Student),
		marks:    make(map[string]map[string]int),
	}
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error {
	for _, existing := range f.students {
		if existing.Email == student.Email {
			return &pq.Error{Code: "23505"}
		}
	}
	f.nextID++
	student.ID = "student-" + strconv.Itoa(f.nextID)
	student.CreatedAt = time.Now().UTC()
	clone := *student
	f.students[student.ID] = &clone
	f.order = append(f.order, student.ID)
	return nil
}

func (f *fakeStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	students := make([]models.Student, 0, len(f.order))
	for _, id := range f.order {
		s, err := f.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, nil
}

func (f *fakeStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := *student
	out.Marks = []models.Mark{}
	for subject, score := range f.marks[id] {
		out.Marks = append(out.Marks, models.Mark{StudentID: id, Subject: subject, Score: score})
	}
	return &out, nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id string) error {
	delete(f.students, id)
	delete(f.marks, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeStudentRepo) AssignCourse(ctx context.Context, studentID, courseID string) error {
	if student, ok := f.students[studentID]; ok {
		student.CourseID = &courseID
	}
	return nil
}

func (f *fakeStudentRepo) UpsertMark(ctx context.Context, studentID, subject string, score int) error {
	if f.marks[studentID] == nil {
		f.marks[studentID] = make(map[string]int)
	}
	f.marks[studentID][subject] = score
	return nil
}

func (f *fakeStudentRepo) DeleteMarks(ctx context.Context, studentID, subject string) error {
	delete(f.marks[studentID], subject)
	return nil
}

// newTestRouter wires the full API surface against in-memory repositories,
// mirroring the production route table.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	studentRepo := newFakeStudentRepo()
	authSvc := service.NewAuthService(&fakeAdminRepo{}, nil, nil, service.AuthConfig{Secret: "test-secret", TokenExpiry: time.Hour})
	courseSvc := service.NewCourseService(&fakeCourseRepo{}, nil, nil)
	studentSvc := service.NewStudentService(studentRepo, nil, nil)
	exportSvc := service.NewExportService(studentRepo, nil)

	authHandler := NewAuthHandler(authSvc)
	courseHandler := NewCourseHandler(courseSvc)
	studentHandler := NewStudentHandler(studentSvc, exportSvc)

	r := gin.New()
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.GET("/check", authHandler.Check)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))

	courses := protected.Group("/courses")
	courses.POST("", courseHandler.Create)
	courses.GET("", courseHandler.List)
	courses.DELETE("/:id", courseHandler.Delete)

	students := protected.Group("/students")
	students.POST("", studentHandler.Create)
	students.GET("", studentHandler.List)
	students.GET("/export", studentHandler.Export)
	students.DELETE("/:id", studentHandler.Delete)
	students.POST("/assign", studentHandler.AssignCourse)
	students.POST("/:id/assign", studentHandler.AssignCourse)
	students.POST("/marks", studentHandler.UpsertMark)
	students.DELETE("/marks", studentHandler.DeleteMark)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func loginForTest(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{"email": "admin@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "admin@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &res)
	require.NotEmpty(t, res.Token)
	return res.Token
}
