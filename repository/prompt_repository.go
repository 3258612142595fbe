package repository

import (
	"context"
	"errors"

	"mindlog-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPromptRepository handles database operations for prompts
type PostgresPromptRepository struct {
	db *pgxpool.Pool
}

// NewPostgresPromptRepository creates a new Postgres-backed prompt repository
func NewPostgresPromptRepository(db *pgxpool.Pool) *PostgresPromptRepository {
	return &PostgresPromptRepository{db: db}
}

// Create inserts a new prompt
func (r *PostgresPromptRepository) Create(ctx context.Context, prompt *models.Prompt) error {
	query := `
		INSERT INTO prompts (prompt_text)
		VALUES ($1)
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query, prompt.PromptText).
		Scan(&prompt.ID, &prompt.CreatedAt)
}

// GetByID retrieves a prompt by ID
func (r *PostgresPromptRepository) GetByID(ctx context.Context, id int64) (*models.Prompt, error) {
	prompt := &models.Prompt{}
	query := `
		SELECT id, prompt_text, created_at
		FROM prompts
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&prompt.ID,
		&prompt.PromptText,
		&prompt.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return prompt, nil
}

// GetByText retrieves a prompt by its exact text. Used by startup seeding to
// stay idempotent.
func (r *PostgresPromptRepository) GetByText(ctx context.Context, text string) (*models.Prompt, error) {
	prompt := &models.Prompt{}
	query := `
		SELECT id, prompt_text, created_at
		FROM prompts
		WHERE prompt_text = $1`

	err := r.db.QueryRow(ctx, query, text).Scan(
		&prompt.ID,
		&prompt.PromptText,
		&prompt.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return prompt, nil
}

// List retrieves all prompts
func (r *PostgresPromptRepository) List(ctx context.Context) ([]*models.Prompt, error) {
	query := `
		SELECT id, prompt_text, created_at
		FROM prompts
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prompts []*models.Prompt
	for rows.Next() {
		prompt := &models.Prompt{}
		err := rows.Scan(
			&prompt.ID,
			&prompt.PromptText,
			&prompt.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, prompt)
	}

	return prompts, rows.Err()
}

// Update updates a prompt's text
func (r *PostgresPromptRepository) Update(ctx context.Context, prompt *models.Prompt) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE prompts SET prompt_text = $2 WHERE id = $1`,
		prompt.ID, prompt.PromptText,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a prompt. Journal entries referencing it keep their content;
// the prompt_id foreign key is set to NULL by the schema.
func (r *PostgresPromptRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM prompts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
