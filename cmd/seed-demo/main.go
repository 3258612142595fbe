package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"mindlog-backend/models"
	"mindlog-backend/repository"
	"mindlog-backend/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Seeds a demo account with a week of moods and journal entries. Safe to run
// more than once.
func main() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load("../../.env")
	}

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	userRepo := repository.NewPostgresUserRepository(pool)
	moodRepo := repository.NewPostgresMoodRepository(pool)
	promptRepo := repository.NewPostgresPromptRepository(pool)
	journalRepo := repository.NewPostgresJournalRepository(pool)

	userService := service.NewUserService(service.WithUserRepository(userRepo))
	moodService := service.NewMoodService(service.WithMoodRepository(moodRepo))
	promptService := service.NewPromptService(service.WithPromptRepository(promptRepo))
	journalService := service.NewJournalService(
		service.JournalWithJournalRepository(journalRepo),
		service.JournalWithPromptRepository(promptRepo),
	)

	if err := promptService.SeedDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed prompts: %v", err)
	}
	log.Println("✓ Prompt catalog seeded")

	displayName := "Demo User"
	userID, err := ensureDemoUser(ctx, userRepo, userService, "demo@mindlog.app", "demopass", &displayName)
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("✓ Demo user ready (id=%d)", userID)

	history := []struct {
		daysAgo int
		mood    models.MoodLabel
		entry   string
	}{
		{6, models.MoodSad, "Rough start to the week. Writing it down helped a little."},
		{5, models.MoodNeutral, "Nothing special today, but the afternoon walk was nice."},
		{4, models.MoodHappy, "Caught up with an old friend over coffee."},
		{3, models.MoodVerySad, "Slept badly and everything felt heavier than it should."},
		{2, models.MoodNeutral, "Back to routine. Cooked a proper dinner for once."},
		{1, models.MoodVeryHappy, "Finished the project I had been putting off for weeks!"},
	}

	for _, h := range history {
		day := models.NewDateOnly(time.Now().AddDate(0, 0, -h.daysAgo))

		result, err := moodService.LogMood(ctx, service.LogMoodRequest{
			UserID:   userID,
			Mood:     h.mood,
			MoodDate: day,
		})
		if errors.Is(err, service.ErrMoodAlreadyLogged) {
			continue
		}
		if err != nil {
			log.Fatalf("Failed to log mood for %s: %v", day, err)
		}

		var promptID *int64
		if prompt, err := promptRepo.GetByText(ctx, result.PromptText); err == nil {
			promptID = &prompt.ID
		}

		_, err = journalService.CreateEntry(ctx, service.CreateEntryRequest{
			UserID:    userID,
			PromptID:  promptID,
			EntryDate: day,
			Content:   h.entry,
		})
		if err != nil {
			log.Fatalf("Failed to create journal entry for %s: %v", day, err)
		}

		log.Printf("✓ Seeded %s: %s", day, h.mood)
	}

	log.Println("✅ Demo data seeded")
}

func ensureDemoUser(ctx context.Context, userRepo repository.UserRepository, userService *service.UserService, email, password string, displayName *string) (int64, error) {
	result, err := userService.CreateUser(ctx, service.CreateUserRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	})
	if err == nil {
		return result.User.ID, nil
	}
	if !errors.Is(err, service.ErrEmailTaken) {
		return 0, err
	}

	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	return existing.ID, nil
}
