package service

import (
	"context"
	"errors"

	"mindlog-backend/models"
	"mindlog-backend/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrUserNotFound     = errors.New("user not found")
)

const minPasswordLength = 6

// UserService handles business logic for user accounts
type UserService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

// UserServiceOption is a functional option for UserService
type UserServiceOption func(*UserService)

// WithUserRepository sets the user repository
func WithUserRepository(repo repository.UserRepository) UserServiceOption {
	return func(s *UserService) {
		s.userRepo = repo
	}
}

// WithBcryptCost overrides the bcrypt cost (tests use bcrypt.MinCost)
func WithBcryptCost(cost int) UserServiceOption {
	return func(s *UserService) {
		s.bcryptCost = cost
	}
}

// NewUserService creates a new user service
func NewUserService(opts ...UserServiceOption) *UserService {
	s := &UserService{bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUserRequest represents a request to register a user
type CreateUserRequest struct {
	Email       string
	Password    string
	DisplayName *string
}

// CreateUserResult represents the result of registering a user
type CreateUserResult struct {
	User *models.User
}

// CreateUser registers a new user. The raw password is hashed and never
// stored.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
	}

	err = s.userRepo.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	return &CreateUserResult{User: user}, nil
}

// GetUserRequest represents a request to fetch a user
type GetUserRequest struct {
	ID int64
}

// GetUserResult represents the result of fetching a user
type GetUserResult struct {
	User *models.User
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, req GetUserRequest) (*GetUserResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	user, err := s.userRepo.GetByID(ctx, req.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &GetUserResult{User: user}, nil
}

// ListUsersResult represents the result of listing users
type ListUsersResult struct {
	Users []*models.User
}

// ListUsers retrieves all users
func (s *UserService) ListUsers(ctx context.Context) (*ListUsersResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ListUsersResult{Users: users}, nil
}

// UpdateUserRequest represents a request to update a user's profile
type UpdateUserRequest struct {
	ID          int64
	Email       string
	DisplayName *string
}

// UpdateUserResult represents the result of updating a user
type UpdateUserResult struct {
	User *models.User
}

// UpdateUser updates a user's email and display name and refreshes the
// update timestamp
func (s *UserService) UpdateUser(ctx context.Context, req UpdateUserRequest) (*UpdateUserResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	user, err := s.userRepo.GetByID(ctx, req.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user.Email = req.Email
	user.DisplayName = req.DisplayName

	err = s.userRepo.Update(ctx, user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, ErrEmailTaken
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &UpdateUserResult{User: user}, nil
}

// DeleteUserRequest represents a request to delete a user
type DeleteUserRequest struct {
	ID int64
}

// DeleteUser removes a user together with all of their moods and journal
// entries
func (s *UserService) DeleteUser(ctx context.Context, req DeleteUserRequest) error {
	if s.userRepo == nil {
		return errors.New("user repository not set")
	}

	err := s.userRepo.Delete(ctx, req.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
