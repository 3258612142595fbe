package repository

import (
	"context"
	"errors"

	"mindlog-backend/models"
)

// Storage-level errors shared by all backends. Services translate these into
// their own error taxonomy.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateMood  = errors.New("mood already logged for date")
)

// UserRepository handles persistence for users
type UserRepository interface {
	// Create inserts the user and fills ID/CreatedAt/UpdatedAt.
	// Returns ErrDuplicateEmail if the email is already registered.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	// Update persists email/display name and refreshes UpdatedAt.
	Update(ctx context.Context, user *models.User) error
	// Delete removes the user and cascades to their moods and journal entries.
	Delete(ctx context.Context, id int64) error
}

// MoodRepository handles persistence for mood records
type MoodRepository interface {
	// Create inserts the mood and fills ID/CreatedAt. Returns ErrDuplicateMood
	// when a record already exists for (user, mood_date); the uniqueness is
	// enforced by the backend, not by a preceding read.
	Create(ctx context.Context, mood *models.Mood) error
	ListByUserID(ctx context.Context, userID int64) ([]*models.Mood, error)
	GetByUserAndDate(ctx context.Context, userID int64, date models.DateOnly) (*models.Mood, error)
}

// PromptRepository handles persistence for the prompt catalog
type PromptRepository interface {
	Create(ctx context.Context, prompt *models.Prompt) error
	GetByID(ctx context.Context, id int64) (*models.Prompt, error)
	GetByText(ctx context.Context, text string) (*models.Prompt, error)
	List(ctx context.Context) ([]*models.Prompt, error)
	Update(ctx context.Context, prompt *models.Prompt) error
	// Delete removes the prompt; journal entries referencing it keep their
	// content but lose the reference.
	Delete(ctx context.Context, id int64) error
}

// JournalRepository handles persistence for journal entries. All lookups are
// scoped to an owning user; an entry owned by someone else is ErrNotFound.
type JournalRepository interface {
	Create(ctx context.Context, entry *models.Journal) error
	GetByIDForUser(ctx context.Context, id, userID int64) (*models.Journal, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Journal, error)
	Update(ctx context.Context, entry *models.Journal) error
	DeleteForUser(ctx context.Context, id, userID int64) error
}
