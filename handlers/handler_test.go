package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"mindlog-backend/middleware"
	"mindlog-backend/repository"
	"mindlog-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubGenerator struct {
	response string
	err      error
}

func (g *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

type testApp struct {
	router *gin.Engine
	store  *repository.MemoryStore
	gen    *stubGenerator
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	gen := &stubGenerator{response: "Thank you for sharing. That sounds like real progress."}

	userService := service.NewUserService(
		service.WithUserRepository(store.Users()),
		service.WithBcryptCost(bcrypt.MinCost),
	)
	authService := service.NewAuthService(
		service.AuthWithUserRepository(store.Users()),
		service.AuthWithSecret("test-signing-secret"),
	)
	moodService := service.NewMoodService(service.WithMoodRepository(store.Moods()))
	promptService := service.NewPromptService(service.WithPromptRepository(store.Prompts()))
	journalService := service.NewJournalService(
		service.JournalWithJournalRepository(store.Journal()),
		service.JournalWithPromptRepository(store.Prompts()),
	)
	feedbackService := service.NewFeedbackService(service.FeedbackWithGenerator(gen))
	exportService := service.NewExportService(
		service.ExportWithUserRepository(store.Users()),
		service.ExportWithMoodRepository(store.Moods()),
		service.ExportWithJournalRepository(store.Journal()),
	)

	require.NoError(t, promptService.SeedDefaults(context.Background()))

	userHandler := NewUserHandler(userService, exportService)
	authHandler := NewAuthHandler(authService)
	moodHandler := NewMoodHandler(moodService)
	promptHandler := NewPromptHandler(promptService)
	journalHandler := NewJournalHandler(journalService, feedbackService)

	r := gin.New()
	r.POST("/login", authHandler.Login)
	r.POST("/users/", userHandler.CreateUser)
	r.GET("/users/", userHandler.ListUsers)
	r.GET("/users/:id", userHandler.GetUser)
	r.PUT("/users/:id", userHandler.UpdateUser)
	r.DELETE("/users/:id", userHandler.DeleteUser)
	r.GET("/prompts/", promptHandler.ListPrompts)
	r.GET("/prompts/:id", promptHandler.GetPrompt)
	r.POST("/journal/feedback", journalHandler.Feedback)

	authed := r.Group("/", middleware.RequireAuth(authService))
	authed.GET("/users/me", userHandler.GetMe)
	authed.POST("/moods/", moodHandler.CreateMood)
	authed.GET("/moods/", moodHandler.ListMoods)
	authed.POST("/journal/", journalHandler.CreateEntry)
	authed.GET("/journal/", journalHandler.ListEntries)
	authed.GET("/journal/:id", journalHandler.GetEntry)
	authed.PUT("/journal/:id", journalHandler.UpdateEntry)
	authed.DELETE("/journal/:id", journalHandler.DeleteEntry)

	return &testApp{router: r, store: store, gen: gen}
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "body: %s", w.Body.String())
	return envelope.Data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.False(t, envelope.Success)
	return envelope.Error.Code
}

func (a *testApp) register(t *testing.T, email, password string) {
	t.Helper()
	w := a.do(t, "POST", "/users/", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
}

func (a *testApp) login(t *testing.T, email, password string) string {
	t.Helper()
	w := a.do(t, "POST", "/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	data := decodeData(t, w)
	token, _ := data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestJournalingFlow(t *testing.T) {
	app := newTestApp(t)

	// Register and log in
	app.register(t, "a@x.com", "secret1")
	token := app.login(t, "a@x.com", "secret1")

	// Log a mood; the response pairs it with the mapped prompt
	w := app.do(t, "POST", "/moods/", token, gin.H{"mood": "happy", "mood_date": "2025-07-29"})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "What brought you joy today?", data["prompt"])

	// A second mood the same day is rejected, naming the date
	w = app.do(t, "POST", "/moods/", token, gin.H{"mood": "sad", "mood_date": "2025-07-29"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MOOD_ALREADY_LOGGED", errorCode(t, w))
	assert.Contains(t, w.Body.String(), "2025-07-29")

	// A different day is fine
	w = app.do(t, "POST", "/moods/", token, gin.H{"mood": "sad", "mood_date": "2025-07-30"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Write a journal entry
	w = app.do(t, "POST", "/journal/", token, gin.H{
		"entry_date": "2025-07-29",
		"content":    "Finished my project today.",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	entry := decodeData(t, w)
	entryID := int64(entry["id"].(float64))
	assert.NotZero(t, entryID)

	// Ask for feedback
	w = app.do(t, "POST", "/journal/feedback", "", gin.H{"content": "Finished my project today."})
	require.Equal(t, http.StatusOK, w.Code)
	feedback := decodeData(t, w)
	assert.Equal(t, "Thank you for sharing. That sounds like real progress.", feedback["feedback"])
}

func TestRegistration_DuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "a@x.com", "secret1")

	w := app.do(t, "POST", "/users/", "", gin.H{"email": "a@x.com", "password": "secret2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMAIL_TAKEN", errorCode(t, w))
}

func TestRegistration_NeverReturnsHash(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, "POST", "/users/", "", gin.H{"email": "a@x.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "secret1")
}

func TestLogin_BadCredentials(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "a@x.com", "secret1")

	w := app.do(t, "POST", "/login", "", gin.H{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, "POST", "/login", "", gin.H{"email": "nobody@x.com", "password": "secret1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMoods_RequireAuth(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, "POST", "/moods/", "", gin.H{"mood": "happy", "mood_date": "2025-07-29"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, "GET", "/moods/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMoods_InvalidInput(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "a@x.com", "secret1")
	token := app.login(t, "a@x.com", "secret1")

	w := app.do(t, "POST", "/moods/", token, gin.H{"mood": "ecstatic", "mood_date": "2025-07-29"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, w))

	w = app.do(t, "POST", "/moods/", token, gin.H{"mood": "happy", "mood_date": "29/07/2025"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, w))
}

func TestJournal_BadPromptRef(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "a@x.com", "secret1")
	token := app.login(t, "a@x.com", "secret1")

	w := app.do(t, "POST", "/journal/", token, gin.H{
		"prompt_id":  999,
		"entry_date": "2025-07-29",
		"content":    "hello",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, w))
}

func TestJournal_OwnershipScoping(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "a@x.com", "secret1")
	app.register(t, "b@x.com", "secret1")
	tokenA := app.login(t, "a@x.com", "secret1")
	tokenB := app.login(t, "b@x.com", "secret1")

	w := app.do(t, "POST", "/journal/", tokenA, gin.H{
		"entry_date": "2025-07-29",
		"content":    "private thoughts",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	entry := decodeData(t, w)
	entryID := int(entry["id"].(float64))

	// Another user sees not found, never forbidden
	w = app.do(t, "GET", "/journal/"+itoa(entryID), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))

	w = app.do(t, "DELETE", "/journal/"+itoa(entryID), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The entry never shows up in another user's listing
	w = app.do(t, "GET", "/journal/", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "private thoughts")
}

func TestFeedback_UpstreamDown(t *testing.T) {
	app := newTestApp(t)
	app.gen.err = errors.New("connection refused")

	w := app.do(t, "POST", "/journal/feedback", "", gin.H{"content": "hello"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", errorCode(t, w))
}

func TestDeleteUser_RevokesTokenAndCascades(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "a@x.com", "secret1")
	token := app.login(t, "a@x.com", "secret1")

	w := app.do(t, "GET", "/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeData(t, w)
	userID := int(me["id"].(float64))

	w = app.do(t, "POST", "/moods/", token, gin.H{"mood": "happy", "mood_date": "2025-07-29"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, "DELETE", "/users/"+itoa(userID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The outstanding token no longer works
	w = app.do(t, "GET", "/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// And the account is gone
	w = app.do(t, "GET", "/users/"+itoa(userID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrompts_SeededCatalog(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, "GET", "/prompts/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "What brought you joy today?")
	assert.Contains(t, w.Body.String(), "Describe something that went well.")

	w = app.do(t, "GET", "/prompts/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, "GET", "/prompts/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, w))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
