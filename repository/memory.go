package repository

import (
	"context"
	"sync"
	"time"

	"mindlog-backend/models"
)

// MemoryStore keeps all four tables in process memory behind one mutex.
// It exists so the service layer can run against either backend unchanged;
// tests use it in place of Postgres.
type MemoryStore struct {
	mu      sync.Mutex
	users   map[int64]*models.User
	moods   map[int64]*models.Mood
	prompts map[int64]*models.Prompt
	journal map[int64]*models.Journal

	nextUserID    int64
	nextMoodID    int64
	nextPromptID  int64
	nextJournalID int64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[int64]*models.User),
		moods:         make(map[int64]*models.Mood),
		prompts:       make(map[int64]*models.Prompt),
		journal:       make(map[int64]*models.Journal),
		nextUserID:    1,
		nextMoodID:    1,
		nextPromptID:  1,
		nextJournalID: 1,
	}
}

// Users returns the user repository view of the store
func (s *MemoryStore) Users() UserRepository { return &memoryUserRepo{s} }

// Moods returns the mood repository view of the store
func (s *MemoryStore) Moods() MoodRepository { return &memoryMoodRepo{s} }

// Prompts returns the prompt repository view of the store
func (s *MemoryStore) Prompts() PromptRepository { return &memoryPromptRepo{s} }

// Journal returns the journal repository view of the store
func (s *MemoryStore) Journal() JournalRepository { return &memoryJournalRepo{s} }

// ---- users ----

type memoryUserRepo struct {
	s *MemoryStore
}

func (r *memoryUserRepo) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	now := time.Now().UTC()
	user.ID = r.s.nextUserID
	r.s.nextUserID++
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	r.s.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepo) List(ctx context.Context) ([]*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := make([]*models.User, 0, len(r.s.users))
	for id := int64(1); id < r.s.nextUserID; id++ {
		if u, ok := r.s.users[id]; ok {
			out := *u
			users = append(users, &out)
		}
	}
	return users, nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	for id, u := range r.s.users {
		if id != user.ID && u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	existing.Email = user.Email
	existing.DisplayName = user.DisplayName
	existing.UpdatedAt = time.Now().UTC()
	user.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *memoryUserRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.users, id)

	// cascade, matching the relational foreign keys
	for mid, m := range r.s.moods {
		if m.UserID == id {
			delete(r.s.moods, mid)
		}
	}
	for jid, j := range r.s.journal {
		if j.UserID == id {
			delete(r.s.journal, jid)
		}
	}
	return nil
}

// ---- moods ----

type memoryMoodRepo struct {
	s *MemoryStore
}

func (r *memoryMoodRepo) Create(ctx context.Context, mood *models.Mood) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.moods {
		if m.UserID == mood.UserID && m.MoodDate.Equal(mood.MoodDate) {
			return ErrDuplicateMood
		}
	}

	mood.ID = r.s.nextMoodID
	r.s.nextMoodID++
	mood.CreatedAt = time.Now().UTC()

	stored := *mood
	r.s.moods[mood.ID] = &stored
	return nil
}

func (r *memoryMoodRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.Mood, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	moods := make([]*models.Mood, 0)
	for id := int64(1); id < r.s.nextMoodID; id++ {
		if m, ok := r.s.moods[id]; ok && m.UserID == userID {
			out := *m
			moods = append(moods, &out)
		}
	}
	return moods, nil
}

func (r *memoryMoodRepo) GetByUserAndDate(ctx context.Context, userID int64, date models.DateOnly) (*models.Mood, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.moods {
		if m.UserID == userID && m.MoodDate.Equal(date) {
			out := *m
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// ---- prompts ----

type memoryPromptRepo struct {
	s *MemoryStore
}

func (r *memoryPromptRepo) Create(ctx context.Context, prompt *models.Prompt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prompt.ID = r.s.nextPromptID
	r.s.nextPromptID++
	prompt.CreatedAt = time.Now().UTC()

	stored := *prompt
	r.s.prompts[prompt.ID] = &stored
	return nil
}

func (r *memoryPromptRepo) GetByID(ctx context.Context, id int64) (*models.Prompt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.prompts[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r *memoryPromptRepo) GetByText(ctx context.Context, text string) (*models.Prompt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.prompts {
		if p.PromptText == text {
			out := *p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryPromptRepo) List(ctx context.Context) ([]*models.Prompt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prompts := make([]*models.Prompt, 0, len(r.s.prompts))
	for id := int64(1); id < r.s.nextPromptID; id++ {
		if p, ok := r.s.prompts[id]; ok {
			out := *p
			prompts = append(prompts, &out)
		}
	}
	return prompts, nil
}

func (r *memoryPromptRepo) Update(ctx context.Context, prompt *models.Prompt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.prompts[prompt.ID]
	if !ok {
		return ErrNotFound
	}
	existing.PromptText = prompt.PromptText
	return nil
}

func (r *memoryPromptRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.prompts[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.prompts, id)

	// null out references, matching ON DELETE SET NULL
	for _, j := range r.s.journal {
		if j.PromptID != nil && *j.PromptID == id {
			j.PromptID = nil
		}
	}
	return nil
}

// ---- journal ----

type memoryJournalRepo struct {
	s *MemoryStore
}

func (r *memoryJournalRepo) Create(ctx context.Context, entry *models.Journal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry.ID = r.s.nextJournalID
	r.s.nextJournalID++
	entry.CreatedAt = time.Now().UTC()

	stored := *entry
	r.s.journal[entry.ID] = &stored
	return nil
}

func (r *memoryJournalRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*models.Journal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	j, ok := r.s.journal[id]
	if !ok || j.UserID != userID {
		return nil, ErrNotFound
	}
	out := *j
	return &out, nil
}

func (r *memoryJournalRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.Journal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries := make([]*models.Journal, 0)
	for id := int64(1); id < r.s.nextJournalID; id++ {
		if j, ok := r.s.journal[id]; ok && j.UserID == userID {
			out := *j
			entries = append(entries, &out)
		}
	}
	return entries, nil
}

func (r *memoryJournalRepo) Update(ctx context.Context, entry *models.Journal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.journal[entry.ID]
	if !ok || existing.UserID != entry.UserID {
		return ErrNotFound
	}
	existing.PromptID = entry.PromptID
	existing.EntryDate = entry.EntryDate
	existing.Content = entry.Content
	return nil
}

func (r *memoryJournalRepo) DeleteForUser(ctx context.Context, id, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	j, ok := r.s.journal[id]
	if !ok || j.UserID != userID {
		return ErrNotFound
	}
	delete(r.s.journal, id)
	return nil
}
