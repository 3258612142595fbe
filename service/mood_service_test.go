package service

import (
	"context"
	"testing"

	"mindlog-backend/models"
	"mindlog-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) models.DateOnly {
	t.Helper()
	d, err := models.ParseDateOnly(s)
	require.NoError(t, err)
	return d
}

func TestMoodService_LogMood_PairsPrompt(t *testing.T) {
	svc := NewMoodService(WithMoodRepository(repository.NewMemoryStore().Moods()))
	ctx := context.Background()

	result, err := svc.LogMood(ctx, LogMoodRequest{
		UserID:   1,
		Mood:     models.MoodHappy,
		MoodDate: mustDate(t, "2025-07-29"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.MoodHappy, result.Mood.Mood)
	assert.Equal(t, "What brought you joy today?", result.PromptText)
}

func TestMoodService_LogMood_EveryLabelHasPrompt(t *testing.T) {
	svc := NewMoodService(WithMoodRepository(repository.NewMemoryStore().Moods()))
	ctx := context.Background()

	for i, label := range models.MoodLabels {
		result, err := svc.LogMood(ctx, LogMoodRequest{
			UserID:   int64(i + 1),
			Mood:     label,
			MoodDate: mustDate(t, "2025-07-29"),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.PromptText, "label %s should map to a prompt", label)
		assert.Equal(t, label.PromptText(), result.PromptText)
	}
}

func TestMoodService_LogMood_InvalidLabel(t *testing.T) {
	svc := NewMoodService(WithMoodRepository(repository.NewMemoryStore().Moods()))

	_, err := svc.LogMood(context.Background(), LogMoodRequest{
		UserID:   1,
		Mood:     models.MoodLabel("ecstatic"),
		MoodDate: mustDate(t, "2025-07-29"),
	})
	assert.ErrorIs(t, err, ErrInvalidMoodLabel)
}

func TestMoodService_LogMood_OncePerDay(t *testing.T) {
	svc := NewMoodService(WithMoodRepository(repository.NewMemoryStore().Moods()))
	ctx := context.Background()
	day := mustDate(t, "2025-07-29")

	_, err := svc.LogMood(ctx, LogMoodRequest{UserID: 1, Mood: models.MoodHappy, MoodDate: day})
	require.NoError(t, err)

	_, err = svc.LogMood(ctx, LogMoodRequest{UserID: 1, Mood: models.MoodSad, MoodDate: day})
	require.ErrorIs(t, err, ErrMoodAlreadyLogged)
	assert.Contains(t, err.Error(), "2025-07-29", "error should name the offending date")

	// A different day is fine
	_, err = svc.LogMood(ctx, LogMoodRequest{UserID: 1, Mood: models.MoodSad, MoodDate: mustDate(t, "2025-07-30")})
	assert.NoError(t, err)
}

func TestMoodService_ListMoods_ScopedToUser(t *testing.T) {
	svc := NewMoodService(WithMoodRepository(repository.NewMemoryStore().Moods()))
	ctx := context.Background()
	day := mustDate(t, "2025-07-29")

	_, err := svc.LogMood(ctx, LogMoodRequest{UserID: 1, Mood: models.MoodHappy, MoodDate: day})
	require.NoError(t, err)
	_, err = svc.LogMood(ctx, LogMoodRequest{UserID: 2, Mood: models.MoodSad, MoodDate: day})
	require.NoError(t, err)

	result, err := svc.ListMoods(ctx, ListMoodsRequest{UserID: 1})
	require.NoError(t, err)
	require.Len(t, result.Moods, 1)
	assert.Equal(t, models.MoodHappy, result.Moods[0].Mood)
}
