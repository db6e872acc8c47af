// Package store holds the profile persistence layer behind a small interface
// so the in-memory placeholder is swappable for the postgres-backed store
// without touching validation logic.
package store

import (
	"errors"

	"github.com/iaigorluiz-svg/nutriai-api/models"
)

// ErrNotFound is returned by Get when no profile exists for the identifier.
var ErrNotFound = errors.New("profile not found")

// ProfileStore is a keyed read/write contract with full-replace semantics.
// Put reports whether the profile was newly created.
type ProfileStore interface {
	Get(userID string) (*models.UserProfile, error)
	Put(profile models.UserProfile) (created bool, err error)
}
