package repository

import (
	"context"
	"errors"

	"mindlog-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresJournalRepository handles database operations for journal entries
type PostgresJournalRepository struct {
	db *pgxpool.Pool
}

// NewPostgresJournalRepository creates a new Postgres-backed journal repository
func NewPostgresJournalRepository(db *pgxpool.Pool) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

// Create inserts a new journal entry
func (r *PostgresJournalRepository) Create(ctx context.Context, entry *models.Journal) error {
	query := `
		INSERT INTO journal (user_id, prompt_id, entry_date, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		entry.UserID,
		entry.PromptID,
		entry.EntryDate,
		entry.Content,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// GetByIDForUser retrieves one of the user's journal entries. Entries owned
// by other users are indistinguishable from missing ones.
func (r *PostgresJournalRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*models.Journal, error) {
	entry := &models.Journal{}
	query := `
		SELECT id, user_id, prompt_id, entry_date, content, created_at
		FROM journal
		WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.PromptID,
		&entry.EntryDate,
		&entry.Content,
		&entry.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListByUserID retrieves all journal entries for a user
func (r *PostgresJournalRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Journal, error) {
	query := `
		SELECT id, user_id, prompt_id, entry_date, content, created_at
		FROM journal
		WHERE user_id = $1
		ORDER BY entry_date`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Journal
	for rows.Next() {
		entry := &models.Journal{}
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.PromptID,
			&entry.EntryDate,
			&entry.Content,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Update updates a journal entry, scoped to its owner
func (r *PostgresJournalRepository) Update(ctx context.Context, entry *models.Journal) error {
	query := `
		UPDATE journal SET
			prompt_id = $3,
			entry_date = $4,
			content = $5
		WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(
		ctx, query,
		entry.ID,
		entry.UserID,
		entry.PromptID,
		entry.EntryDate,
		entry.Content,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteForUser removes one of the user's journal entries
func (r *PostgresJournalRepository) DeleteForUser(ctx context.Context, id, userID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM journal WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
