package models

import (
	"time"
)

// Journal represents a free-text entry for a calendar day, optionally tied
// to a prompt
type Journal struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PromptID  *int64    `json:"prompt_id"`
	EntryDate DateOnly  `json:"entry_date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
