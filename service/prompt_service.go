package service

import (
	"context"
	"errors"

	"mindlog-backend/models"
	"mindlog-backend/repository"
)

var ErrPromptNotFound = errors.New("prompt not found")

// PromptService handles the reflective prompt catalog
type PromptService struct {
	promptRepo repository.PromptRepository
}

// PromptServiceOption is a functional option for PromptService
type PromptServiceOption func(*PromptService)

// WithPromptRepository sets the prompt repository
func WithPromptRepository(repo repository.PromptRepository) PromptServiceOption {
	return func(s *PromptService) {
		s.promptRepo = repo
	}
}

// NewPromptService creates a new prompt service
func NewPromptService(opts ...PromptServiceOption) *PromptService {
	s := &PromptService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SeedDefaults inserts the fixed mood-mapped prompt set. Idempotent: a prompt
// whose text is already present is not duplicated, so restarts are safe.
func (s *PromptService) SeedDefaults(ctx context.Context) error {
	if s.promptRepo == nil {
		return errors.New("prompt repository not set")
	}

	for _, label := range models.MoodLabels {
		text := label.PromptText()

		_, err := s.promptRepo.GetByText(ctx, text)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		prompt := &models.Prompt{PromptText: text}
		if err := s.promptRepo.Create(ctx, prompt); err != nil {
			return err
		}
	}
	return nil
}

// GetPromptRequest represents a request to fetch a prompt
type GetPromptRequest struct {
	ID int64
}

// GetPromptResult represents the result of fetching a prompt
type GetPromptResult struct {
	Prompt *models.Prompt
}

// GetPrompt retrieves a prompt by ID
func (s *PromptService) GetPrompt(ctx context.Context, req GetPromptRequest) (*GetPromptResult, error) {
	if s.promptRepo == nil {
		return nil, errors.New("prompt repository not set")
	}

	prompt, err := s.promptRepo.GetByID(ctx, req.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPromptNotFound
	}
	if err != nil {
		return nil, err
	}

	return &GetPromptResult{Prompt: prompt}, nil
}

// ListPromptsResult represents the result of listing prompts
type ListPromptsResult struct {
	Prompts []*models.Prompt
}

// ListPrompts retrieves the whole catalog
func (s *PromptService) ListPrompts(ctx context.Context) (*ListPromptsResult, error) {
	if s.promptRepo == nil {
		return nil, errors.New("prompt repository not set")
	}

	prompts, err := s.promptRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ListPromptsResult{Prompts: prompts}, nil
}
