package repository

import (
	"context"
	"errors"

	"mindlog-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresMoodRepository handles database operations for moods
type PostgresMoodRepository struct {
	db *pgxpool.Pool
}

// NewPostgresMoodRepository creates a new Postgres-backed mood repository
func NewPostgresMoodRepository(db *pgxpool.Pool) *PostgresMoodRepository {
	return &PostgresMoodRepository{db: db}
}

// Create inserts a new mood. The moods_user_date_key unique index is the
// authoritative guard for the one-mood-per-day rule; a violation surfaces as
// ErrDuplicateMood regardless of any earlier read.
func (r *PostgresMoodRepository) Create(ctx context.Context, mood *models.Mood) error {
	query := `
		INSERT INTO moods (user_id, mood, mood_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		mood.UserID,
		mood.Mood,
		mood.MoodDate,
	).Scan(&mood.ID, &mood.CreatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicateMood
	}
	return err
}

// ListByUserID retrieves all moods for a user
func (r *PostgresMoodRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Mood, error) {
	query := `
		SELECT id, user_id, mood, mood_date, created_at
		FROM moods
		WHERE user_id = $1
		ORDER BY mood_date`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var moods []*models.Mood
	for rows.Next() {
		mood := &models.Mood{}
		err := rows.Scan(
			&mood.ID,
			&mood.UserID,
			&mood.Mood,
			&mood.MoodDate,
			&mood.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		moods = append(moods, mood)
	}

	return moods, rows.Err()
}

// GetByUserAndDate retrieves the mood logged by a user for a calendar date
func (r *PostgresMoodRepository) GetByUserAndDate(ctx context.Context, userID int64, date models.DateOnly) (*models.Mood, error) {
	mood := &models.Mood{}
	query := `
		SELECT id, user_id, mood, mood_date, created_at
		FROM moods
		WHERE user_id = $1 AND mood_date = $2`

	err := r.db.QueryRow(ctx, query, userID, date).Scan(
		&mood.ID,
		&mood.UserID,
		&mood.Mood,
		&mood.MoodDate,
		&mood.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return mood, nil
}
