package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mindlog-backend/models"
	"mindlog-backend/repository"
	"mindlog-backend/storage"

	"github.com/google/uuid"
)

// ExportService writes a JSON snapshot of a user's data to the configured
// storage backend
type ExportService struct {
	userRepo    repository.UserRepository
	moodRepo    repository.MoodRepository
	journalRepo repository.JournalRepository
	store       storage.Storage
}

// ExportServiceOption is a functional option for ExportService
type ExportServiceOption func(*ExportService)

// ExportWithUserRepository sets the user repository
func ExportWithUserRepository(repo repository.UserRepository) ExportServiceOption {
	return func(s *ExportService) {
		s.userRepo = repo
	}
}

// ExportWithMoodRepository sets the mood repository
func ExportWithMoodRepository(repo repository.MoodRepository) ExportServiceOption {
	return func(s *ExportService) {
		s.moodRepo = repo
	}
}

// ExportWithJournalRepository sets the journal repository
func ExportWithJournalRepository(repo repository.JournalRepository) ExportServiceOption {
	return func(s *ExportService) {
		s.journalRepo = repo
	}
}

// ExportWithStorage sets the storage backend
func ExportWithStorage(store storage.Storage) ExportServiceOption {
	return func(s *ExportService) {
		s.store = store
	}
}

// NewExportService creates a new export service
func NewExportService(opts ...ExportServiceOption) *ExportService {
	s := &ExportService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// exportSnapshot is the on-disk shape of an export
type exportSnapshot struct {
	ExportedAt time.Time         `json:"exported_at"`
	User       *models.User      `json:"user"`
	Moods      []*models.Mood    `json:"moods"`
	Journal    []*models.Journal `json:"journal"`
}

// ExportUserDataRequest represents a request to export the caller's data
type ExportUserDataRequest struct {
	UserID int64
}

// ExportUserDataResult carries the storage key of the written snapshot
type ExportUserDataResult struct {
	Key          string
	MoodCount    int
	JournalCount int
}

// ExportUserData collects the caller's profile, moods and journal entries
// and uploads them as one JSON object
func (s *ExportService) ExportUserData(ctx context.Context, req ExportUserDataRequest) (*ExportUserDataResult, error) {
	if s.userRepo == nil || s.moodRepo == nil || s.journalRepo == nil {
		return nil, errors.New("repositories not set")
	}
	if s.store == nil {
		return nil, errors.New("storage not set")
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	moods, err := s.moodRepo.ListByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	journal, err := s.journalRepo.ListByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	snapshot := exportSnapshot{
		ExportedAt: time.Now().UTC(),
		User:       user,
		Moods:      moods,
		Journal:    journal,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	name := fmt.Sprintf("user_%d_export.json", req.UserID)
	key, err := s.store.Upload(ctx, uuid.New(), name, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	return &ExportUserDataResult{
		Key:          key,
		MoodCount:    len(moods),
		JournalCount: len(journal),
	}, nil
}
