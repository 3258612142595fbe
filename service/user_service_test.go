package service

import (
	"context"
	"testing"

	"mindlog-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(store *repository.MemoryStore) *UserService {
	return NewUserService(
		WithUserRepository(store.Users()),
		WithBcryptCost(bcrypt.MinCost),
	)
}

func TestUserService_CreateUser(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newUserService(store)
	ctx := context.Background()

	name := "Alice"
	result, err := svc.CreateUser(ctx, CreateUserRequest{
		Email:       "alice@example.com",
		Password:    "secret1",
		DisplayName: &name,
	})
	require.NoError(t, err)
	assert.NotZero(t, result.User.ID)
	assert.Equal(t, "alice@example.com", result.User.Email)

	// The raw password is never stored
	assert.NotEqual(t, "secret1", result.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("secret1")))
}

func TestUserService_CreateUser_ShortPassword(t *testing.T) {
	svc := newUserService(repository.NewMemoryStore())

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "alice@example.com",
		Password: "12345",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	svc := newUserService(repository.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserRequest{Email: "alice@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_UpdateUser(t *testing.T) {
	svc := newUserService(repository.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	name := "Alice B"
	updated, err := svc.UpdateUser(ctx, UpdateUserRequest{
		ID:          created.User.ID,
		Email:       "aliceb@example.com",
		DisplayName: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "aliceb@example.com", updated.User.Email)
	assert.Equal(t, "Alice B", *updated.User.DisplayName)
}

func TestUserService_UpdateUser_EmailCollision(t *testing.T) {
	svc := newUserService(repository.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	bob, err := svc.CreateUser(ctx, CreateUserRequest{Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, UpdateUserRequest{ID: bob.User.ID, Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc := newUserService(repository.NewMemoryStore())

	_, err := svc.GetUser(context.Background(), GetUserRequest{ID: 42})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc := newUserService(repository.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, DeleteUserRequest{ID: created.User.ID}))

	err = svc.DeleteUser(ctx, DeleteUserRequest{ID: created.User.ID})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
