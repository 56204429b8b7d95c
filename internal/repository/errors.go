package repository

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code raised when a unique index
// rejects a write. Uniqueness of admin emails, course names and student
// emails relies entirely on this store-level enforcement.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint rejection.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
