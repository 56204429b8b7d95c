package models

import "time"

// Mark is a per-subject score. The subject name is the key: at most one row
// exists per (student, subject) pair.
type Mark struct {
	StudentID string `db:"student_id" json:"-"`
	Subject   string `db:"subject" json:"subject"`
	Score     int    `db:"score" json:"marks"`
}

// Student represents an enrolled student. CourseID is a weak reference: the
// course may have been deleted, in which case Course resolves to nil.
type Student struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	CourseID  *string   `db:"course_id" json:"-"`
	Course    *Course   `db:"-" json:"course"`
	Marks     []Mark    `db:"-" json:"marks"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
