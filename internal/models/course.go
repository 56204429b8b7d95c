package models

import (
	"time"

	"github.com/lib/pq"
)

// Course represents a course offering. Subjects keep insertion order and are
// not deduplicated.
type Course struct {
	ID          string         `db:"id" json:"id"`
	CourseName  string         `db:"course_name" json:"courseName"`
	Description string         `db:"description" json:"description"`
	Duration    int            `db:"duration" json:"duration"`
	Subjects    pq.StringArray `db:"subjects" json:"subjects"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
}
