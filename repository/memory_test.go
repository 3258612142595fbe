package repository

import (
	"context"
	"testing"

	"mindlog-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, store *MemoryStore, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "hash"}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user
}

func mustDate(t *testing.T, s string) models.DateOnly {
	t.Helper()
	d, err := models.ParseDateOnly(s)
	require.NoError(t, err)
	return d
}

func TestMemoryUserRepo_DuplicateEmail(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	newUser(t, store, "a@example.com")

	err := store.Users().Create(ctx, &models.User{Email: "a@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMemoryUserRepo_UpdateEmailCollision(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	newUser(t, store, "a@example.com")
	second := newUser(t, store, "b@example.com")

	second.Email = "a@example.com"
	err := store.Users().Update(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMemoryMoodRepo_DuplicatePerDay(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	user := newUser(t, store, "a@example.com")
	day := mustDate(t, "2025-07-29")

	require.NoError(t, store.Moods().Create(ctx, &models.Mood{UserID: user.ID, Mood: models.MoodHappy, MoodDate: day}))

	err := store.Moods().Create(ctx, &models.Mood{UserID: user.ID, Mood: models.MoodSad, MoodDate: day})
	assert.ErrorIs(t, err, ErrDuplicateMood)

	// Another user may log the same day
	other := newUser(t, store, "b@example.com")
	assert.NoError(t, store.Moods().Create(ctx, &models.Mood{UserID: other.ID, Mood: models.MoodSad, MoodDate: day}))
}

func TestMemoryUserRepo_DeleteCascades(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	user := newUser(t, store, "a@example.com")
	day := mustDate(t, "2025-07-29")

	require.NoError(t, store.Moods().Create(ctx, &models.Mood{UserID: user.ID, Mood: models.MoodHappy, MoodDate: day}))
	require.NoError(t, store.Journal().Create(ctx, &models.Journal{UserID: user.ID, EntryDate: day, Content: "hello"}))

	require.NoError(t, store.Users().Delete(ctx, user.ID))

	moods, err := store.Moods().ListByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, moods)

	entries, err := store.Journal().ListByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = store.Users().GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryPromptRepo_DeleteClearsJournalRefs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	user := newUser(t, store, "a@example.com")

	prompt := &models.Prompt{PromptText: "How was your day?"}
	require.NoError(t, store.Prompts().Create(ctx, prompt))

	entry := &models.Journal{UserID: user.ID, PromptID: &prompt.ID, EntryDate: mustDate(t, "2025-07-29"), Content: "fine"}
	require.NoError(t, store.Journal().Create(ctx, entry))

	require.NoError(t, store.Prompts().Delete(ctx, prompt.ID))

	got, err := store.Journal().GetByIDForUser(ctx, entry.ID, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PromptID)
}

func TestMemoryJournalRepo_OwnershipScoping(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	owner := newUser(t, store, "a@example.com")
	stranger := newUser(t, store, "b@example.com")

	entry := &models.Journal{UserID: owner.ID, EntryDate: mustDate(t, "2025-07-29"), Content: "private"}
	require.NoError(t, store.Journal().Create(ctx, entry))

	_, err := store.Journal().GetByIDForUser(ctx, entry.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Journal().DeleteForUser(ctx, entry.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Owner still sees it
	got, err := store.Journal().GetByIDForUser(ctx, entry.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Content)
}

func TestMemoryStore_CopyOnReturn(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	user := newUser(t, store, "a@example.com")

	got, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)

	got.Email = "mutated@example.com"

	again, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", again.Email)
}
