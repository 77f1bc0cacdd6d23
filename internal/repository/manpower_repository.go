package repository

import (
	"context"
	"errors"

	"next-target-mock/internal/models"
)

var (
	ErrNotFound     = errors.New("person not found")
	ErrDuplicateKey = errors.New("duplicate personalId")
)

// ManpowerStore is the document store behind the manpower API.
type ManpowerStore interface {
	// FindRawByPersonalID returns the stored document untouched.
	FindRawByPersonalID(ctx context.Context, personalID string) (models.Document, error)
	FindByPersonalID(ctx context.Context, personalID string) (*models.Person, error)
	// Insert stores p and sets its ID.
	Insert(ctx context.Context, p *models.Person) error
	// InsertMany stores people in order with one bulk call. Records before a
	// failing one stay stored.
	InsertMany(ctx context.Context, people []models.Person) (int, error)
	// FindAllSortedByLastName orders by lastName, then by _id.
	FindAllSortedByLastName(ctx context.Context) ([]models.Person, error)
	DeleteAll(ctx context.Context) (int64, error)
	// CountPersonalIDsInWindow counts the personalIds in [low, high] made of
	// exactly len(low) digits. low and high must have the same length.
	CountPersonalIDsInWindow(ctx context.Context, low, high string) (int64, error)
	// PersonalIDsInWindow lists those ids in ascending order.
	PersonalIDsInWindow(ctx context.Context, low, high string) ([]string, error)
}

// DuplicateKeyError keeps the store's own message while matching ErrDuplicateKey.
type DuplicateKeyError struct {
	Message string
	Err     error
}

func (e *DuplicateKeyError) Error() string { return e.Message }

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

func (e *DuplicateKeyError) Unwrap() error { return e.Err }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
