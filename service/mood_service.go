package service

import (
	"context"
	"errors"
	"fmt"

	"mindlog-backend/models"
	"mindlog-backend/repository"
)

var (
	ErrInvalidMoodLabel  = errors.New("invalid mood label")
	ErrMoodAlreadyLogged = errors.New("mood already logged")
)

// MoodService handles business logic for mood logging
type MoodService struct {
	moodRepo repository.MoodRepository
}

// MoodServiceOption is a functional option for MoodService
type MoodServiceOption func(*MoodService)

// WithMoodRepository sets the mood repository
func WithMoodRepository(repo repository.MoodRepository) MoodServiceOption {
	return func(s *MoodService) {
		s.moodRepo = repo
	}
}

// NewMoodService creates a new mood service
func NewMoodService(opts ...MoodServiceOption) *MoodService {
	s := &MoodService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LogMoodRequest represents a request to log a mood for a calendar day
type LogMoodRequest struct {
	UserID   int64
	Mood     models.MoodLabel
	MoodDate models.DateOnly
}

// LogMoodResult pairs the stored mood with the reflective prompt fixed for
// its label
type LogMoodResult struct {
	Mood       *models.Mood
	PromptText string
}

// LogMood stores a mood for (user, date). At most one mood may exist per
// user per calendar day; a second attempt fails naming the offending date.
// The storage backend's uniqueness guarantee closes the race between
// concurrent attempts, so no pre-read is consulted.
func (s *MoodService) LogMood(ctx context.Context, req LogMoodRequest) (*LogMoodResult, error) {
	if s.moodRepo == nil {
		return nil, errors.New("mood repository not set")
	}

	if !req.Mood.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMoodLabel, req.Mood)
	}

	mood := &models.Mood{
		UserID:   req.UserID,
		Mood:     req.Mood,
		MoodDate: req.MoodDate,
	}

	err := s.moodRepo.Create(ctx, mood)
	if errors.Is(err, repository.ErrDuplicateMood) {
		return nil, fmt.Errorf("%w for %s", ErrMoodAlreadyLogged, req.MoodDate)
	}
	if err != nil {
		return nil, err
	}

	return &LogMoodResult{
		Mood:       mood,
		PromptText: req.Mood.PromptText(),
	}, nil
}

// ListMoodsRequest represents a request to list a user's moods
type ListMoodsRequest struct {
	UserID int64
}

// ListMoodsResult represents the result of listing moods
type ListMoodsResult struct {
	Moods []*models.Mood
}

// ListMoods retrieves the user's own moods only
func (s *MoodService) ListMoods(ctx context.Context, req ListMoodsRequest) (*ListMoodsResult, error) {
	if s.moodRepo == nil {
		return nil, errors.New("mood repository not set")
	}

	moods, err := s.moodRepo.ListByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return &ListMoodsResult{Moods: moods}, nil
}
