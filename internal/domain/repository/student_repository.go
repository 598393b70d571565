// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrStudentNotFound is returned when a student is not found.
	ErrStudentNotFound = errors.New("student not found")
	// ErrDuplicateStudent is returned when the email is already registered.
	ErrDuplicateStudent = errors.New("student already exists")
)

// StudentRepository defines student account storage.
type StudentRepository interface {
	// CreateStudent persists a new student. Email must be unique.
	CreateStudent(ctx context.Context, student *entity.Student) error

	FindStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)

	// FindStudentByEmail looks up a student by normalised email.
	FindStudentByEmail(ctx context.Context, email string) (*entity.Student, error)

	// FindStudentsByIDs returns the students that exist among ids.
	FindStudentsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Student, error)

	// UpdateStudent saves profile, preferences and settings.
	UpdateStudent(ctx context.Context, student *entity.Student) error

	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
