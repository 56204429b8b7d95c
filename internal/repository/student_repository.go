package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/edupanel/edu-admin-api/internal/models"
)

// StudentRepository handles persistence for students and their marks.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository creates a new repository instance.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// studentCourseRow scans a student LEFT JOINed with its (possibly absent)
// course. A dangling course_id scans as all-NULL course columns.
type studentCourseRow struct {
	models.Student
	CID          *string        `db:"c_id"`
	CCourseName  *string        `db:"c_course_name"`
	CDescription *string        `db:"c_description"`
	CDuration    *int           `db:"c_duration"`
	CSubjects    pq.StringArray `db:"c_subjects"`
	CCreatedAt   *time.Time     `db:"c_created_at"`
}

func (row *studentCourseRow) toStudent() models.Student {
	student := row.Student
	if row.CID != nil {
		student.Course = &models.Course{
			ID:          *row.CID,
			CourseName:  *row.CCourseName,
			Description: *row.CDescription,
			Duration:    *row.CDuration,
			Subjects:    row.CSubjects,
			CreatedAt:   *row.CCreatedAt,
		}
	}
	student.Marks = []models.Mark{}
	return student
}

const studentJoinColumns = `s.id, s.name, s.email, s.course_id, s.created_at,
c.id AS c_id, c.course_name AS c_course_name, c.description AS c_description, c.duration AS c_duration, c.subjects AS c_subjects, c.created_at AS c_created_at`

// Create persists a new student. Email uniqueness is enforced by the store's
// unique index.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO students (id, name, email, course_id, created_at) VALUES (:id, :name, :email, :course_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create student: %w", err)
	}
	if student.Marks == nil {
		student.Marks = []models.Mark{}
	}
	return nil
}

// List returns all students in insertion order with courses joined and marks
// attached.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students s LEFT JOIN courses c ON c.id = s.course_id ORDER BY s.created_at ASC`, studentJoinColumns)
	var rows []studentCourseRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	students := make([]models.Student, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for i := range rows {
		students = append(students, rows[i].toStudent())
		ids = append(ids, rows[i].ID)
	}
	if len(ids) == 0 {
		return students, nil
	}

	const marksQuery = `SELECT student_id, subject, score FROM student_marks WHERE student_id = ANY($1) ORDER BY student_id, subject`
	var marks []models.Mark
	if err := r.db.SelectContext(ctx, &marks, marksQuery, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("list student marks: %w", err)
	}

	byStudent := make(map[string][]models.Mark, len(students))
	for _, mark := range marks {
		byStudent[mark.StudentID] = append(byStudent[mark.StudentID], mark)
	}
	for i := range students {
		if m, ok := byStudent[students[i].ID]; ok {
			students[i].Marks = m
		}
	}
	return students, nil
}

// FindByID returns a student with course joined and marks attached.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students s LEFT JOIN courses c ON c.id = s.course_id WHERE s.id = $1 LIMIT 1`, studentJoinColumns)
	var row studentCourseRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student by id: %w", err)
	}

	student := row.toStudent()
	const marksQuery = `SELECT student_id, subject, score FROM student_marks WHERE student_id = $1 ORDER BY subject`
	if err := r.db.SelectContext(ctx, &student.Marks, marksQuery, id); err != nil {
		return nil, fmt.Errorf("find student marks: %w", err)
	}
	if student.Marks == nil {
		student.Marks = []models.Mark{}
	}
	return &student, nil
}

// Delete removes a student and, through the cascade on student_marks, its
// marks. Deleting an unknown id is a no-op.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

// AssignCourse stores courseID on the student. The course id is written
// as-is: the reference is weak and no existence check happens here.
func (r *StudentRepository) AssignCourse(ctx context.Context, studentID, courseID string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE students SET course_id = $2 WHERE id = $1`, studentID, courseID); err != nil {
		return fmt.Errorf("assign course: %w", err)
	}
	return nil
}

// UpsertMark atomically replaces the score for (student, subject) or inserts
// a new row. This is a single store-level operation: concurrent upserts for
// the same subject cannot interleave.
func (r *StudentRepository) UpsertMark(ctx context.Context, studentID, subject string, score int) error {
	const query = `INSERT INTO student_marks (student_id, subject, score)
VALUES ($1, $2, $3)
ON CONFLICT (student_id, subject)
DO UPDATE SET score = EXCLUDED.score`
	if _, err := r.db.ExecContext(ctx, query, studentID, subject, score); err != nil {
		return fmt.Errorf("upsert mark: %w", err)
	}
	return nil
}

// DeleteMarks removes all marks matching the subject exactly. Removing a
// missing subject succeeds.
func (r *StudentRepository) DeleteMarks(ctx context.Context, studentID, subject string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM student_marks WHERE student_id = $1 AND subject = $2`, studentID, subject); err != nil {
		return fmt.Errorf("delete marks: %w", err)
	}
	return nil
}
