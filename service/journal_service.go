package service

import (
	"context"
	"errors"
	"strings"

	"mindlog-backend/models"
	"mindlog-backend/repository"
)

var (
	ErrEntryNotFound    = errors.New("journal entry not found")
	ErrPromptRefInvalid = errors.New("prompt does not exist")
	ErrEmptyContent     = errors.New("content is required")
)

// JournalService handles business logic for journal entries
type JournalService struct {
	journalRepo repository.JournalRepository
	promptRepo  repository.PromptRepository
}

// JournalServiceOption is a functional option for JournalService
type JournalServiceOption func(*JournalService)

// JournalWithJournalRepository sets the journal repository
func JournalWithJournalRepository(repo repository.JournalRepository) JournalServiceOption {
	return func(s *JournalService) {
		s.journalRepo = repo
	}
}

// JournalWithPromptRepository sets the prompt repository
func JournalWithPromptRepository(repo repository.PromptRepository) JournalServiceOption {
	return func(s *JournalService) {
		s.promptRepo = repo
	}
}

// NewJournalService creates a new journal service
func NewJournalService(opts ...JournalServiceOption) *JournalService {
	s := &JournalService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// validatePromptRef checks that a supplied prompt reference points at an
// existing prompt at write time
func (s *JournalService) validatePromptRef(ctx context.Context, promptID *int64) error {
	if promptID == nil {
		return nil
	}
	if s.promptRepo == nil {
		return errors.New("prompt repository not set")
	}

	_, err := s.promptRepo.GetByID(ctx, *promptID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPromptRefInvalid
	}
	return err
}

// CreateEntryRequest represents a request to create a journal entry
type CreateEntryRequest struct {
	UserID    int64
	PromptID  *int64
	EntryDate models.DateOnly
	Content   string
}

// CreateEntryResult represents the result of creating a journal entry
type CreateEntryResult struct {
	Entry *models.Journal
}

// CreateEntry stores a journal entry attributed to the authenticated caller
func (s *JournalService) CreateEntry(ctx context.Context, req CreateEntryRequest) (*CreateEntryResult, error) {
	if s.journalRepo == nil {
		return nil, errors.New("journal repository not set")
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}
	if err := s.validatePromptRef(ctx, req.PromptID); err != nil {
		return nil, err
	}

	entry := &models.Journal{
		UserID:    req.UserID,
		PromptID:  req.PromptID,
		EntryDate: req.EntryDate,
		Content:   req.Content,
	}

	if err := s.journalRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return &CreateEntryResult{Entry: entry}, nil
}

// GetEntryRequest represents a request to fetch one of the caller's entries
type GetEntryRequest struct {
	ID     int64
	UserID int64
}

// GetEntryResult represents the result of fetching an entry
type GetEntryResult struct {
	Entry *models.Journal
}

// GetEntry retrieves one of the caller's entries. Entries owned by other
// users fail as not found rather than forbidden, so existence is never
// confirmed to unauthorized callers.
func (s *JournalService) GetEntry(ctx context.Context, req GetEntryRequest) (*GetEntryResult, error) {
	if s.journalRepo == nil {
		return nil, errors.New("journal repository not set")
	}

	entry, err := s.journalRepo.GetByIDForUser(ctx, req.ID, req.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &GetEntryResult{Entry: entry}, nil
}

// ListEntriesRequest represents a request to list the caller's entries
type ListEntriesRequest struct {
	UserID int64
}

// ListEntriesResult represents the result of listing entries
type ListEntriesResult struct {
	Entries []*models.Journal
}

// ListEntries retrieves the caller's own entries only
func (s *JournalService) ListEntries(ctx context.Context, req ListEntriesRequest) (*ListEntriesResult, error) {
	if s.journalRepo == nil {
		return nil, errors.New("journal repository not set")
	}

	entries, err := s.journalRepo.ListByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return &ListEntriesResult{Entries: entries}, nil
}

// UpdateEntryRequest represents a request to update one of the caller's
// entries
type UpdateEntryRequest struct {
	ID        int64
	UserID    int64
	PromptID  *int64
	EntryDate models.DateOnly
	Content   string
}

// UpdateEntryResult represents the result of updating an entry
type UpdateEntryResult struct {
	Entry *models.Journal
}

// UpdateEntry updates an entry under the same prompt-reference rule as
// create, scoped to the caller
func (s *JournalService) UpdateEntry(ctx context.Context, req UpdateEntryRequest) (*UpdateEntryResult, error) {
	if s.journalRepo == nil {
		return nil, errors.New("journal repository not set")
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}
	if err := s.validatePromptRef(ctx, req.PromptID); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.GetByIDForUser(ctx, req.ID, req.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	entry.PromptID = req.PromptID
	entry.EntryDate = req.EntryDate
	entry.Content = req.Content

	err = s.journalRepo.Update(ctx, entry)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &UpdateEntryResult{Entry: entry}, nil
}

// DeleteEntryRequest represents a request to delete one of the caller's
// entries
type DeleteEntryRequest struct {
	ID     int64
	UserID int64
}

// DeleteEntry removes one of the caller's entries
func (s *JournalService) DeleteEntry(ctx context.Context, req DeleteEntryRequest) error {
	if s.journalRepo == nil {
		return errors.New("journal repository not set")
	}

	err := s.journalRepo.DeleteForUser(ctx, req.ID, req.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEntryNotFound
	}
	return err
}
