package models

import (
	"time"
)

// Prompt is a reusable reflective question, independent of any single user
type Prompt struct {
	ID         int64     `json:"id"`
	PromptText string    `json:"prompt_text"`
	CreatedAt  time.Time `json:"created_at"`
}
