package models

import (
	"time"
)

// MoodLabel is one of the fixed set of emotional states a user can log,
// at most once per calendar day.
type MoodLabel string

const (
	MoodAngry     MoodLabel = "angry"
	MoodVerySad   MoodLabel = "very_sad"
	MoodSad       MoodLabel = "sad"
	MoodNeutral   MoodLabel = "neutral"
	MoodHappy     MoodLabel = "happy"
	MoodVeryHappy MoodLabel = "very_happy"
)

// MoodLabels lists every valid label in display order.
var MoodLabels = []MoodLabel{
	MoodAngry,
	MoodVerySad,
	MoodSad,
	MoodNeutral,
	MoodHappy,
	MoodVeryHappy,
}

// Valid reports whether the label belongs to the fixed enumeration.
func (m MoodLabel) Valid() bool {
	switch m {
	case MoodAngry, MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy:
		return true
	}
	return false
}

// moodPrompts maps each mood label to its fixed reflective question.
var moodPrompts = map[MoodLabel]string{
	MoodAngry:     "What triggered your anger, and how did you respond?",
	MoodVerySad:   "What's weighing on you the most right now?",
	MoodSad:       "What made you feel this way today?",
	MoodNeutral:   "Describe something that went well.",
	MoodHappy:     "What brought you joy today?",
	MoodVeryHappy: "What would you like to remember about today?",
}

// PromptText returns the reflective question fixed for the label.
func (m MoodLabel) PromptText() string {
	return moodPrompts[m]
}

// Mood represents one logged mood for a user on a calendar day
type Mood struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Mood      MoodLabel `json:"mood"`
	MoodDate  DateOnly  `json:"mood_date"`
	CreatedAt time.Time `json:"created_at"`
}
