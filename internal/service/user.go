package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/motodeal/motodeal-server/internal/logger"
	"github.com/motodeal/motodeal-server/internal/model"
	"github.com/motodeal/motodeal-server/internal/validation"
)

// DefaultRole is assigned to users created without an explicit role.
const DefaultRole = "user"

// User orchestrates identity creation, credential updates, and login.
type User struct {
	store     model.UserStore
	validator *validation.UserValidator
	tokens    model.TokenManager
	logger    *logger.Logger
}

// NewUser creates a user service. The store doubles as the uniqueness
// collaborator for the validation pipeline.
func NewUser(store model.UserStore, tokens model.TokenManager, logger *logger.Logger) *User {
	return &User{
		store:     store,
		validator: validation.NewUserValidator(store),
		tokens:    tokens,
		logger:    logger,
	}
}

// CreateUserParams carries raw attributes from the caller.
type CreateUserParams struct {
	Name     string
	Email    string
	Password string
	Provider model.Provider
	Role     string
}

// Create builds a user from raw attributes, runs the validation pipeline,
// and persists the record on success. A *validation.Error return means
// nothing was committed and the caller may fix the input and retry.
func (s *User) Create(ctx context.Context, params CreateUserParams) (model.User, error) {
	s.logger.Debug("User service: creating user", "name", params.Name)

	now := time.Now()
	user := model.User{
		ID:        uuid.New(),
		Name:      params.Name,
		Email:     model.NormalizeEmail(params.Email),
		Provider:  params.Provider,
		Role:      params.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if user.Provider == "" {
		user.Provider = model.ProviderLocal
	}
	if user.Role == "" {
		user.Role = DefaultRole
	}

	if params.Password != "" {
		if err := user.SetSecret(params.Password); err != nil {
			s.logger.Error("User service: failed to set secret",
				"name", params.Name,
				"error", err.Error())
			return model.User{}, fmt.Errorf("failed to set secret: %w", err)
		}
	}

	if err := s.validator.Validate(ctx, user); err != nil {
		s.logger.Info("User service: validation rejected user",
			"name", params.Name,
			"error", err.Error())
		return model.User{}, err
	}

	created, err := s.store.Create(ctx, user)
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"name", params.Name,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created", "user_id", created.ID)

	return created, nil
}

// Get returns a user by identifier.
func (s *User) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// UpdateUserParams carries attribute updates. Empty fields keep their
// current value.
type UpdateUserParams struct {
	Name  string
	Email string
	Role  string
}

// Update applies attribute changes and re-runs the validation pipeline
// before persisting.
func (s *User) Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	previousEmail := user.Email
	if params.Name != "" {
		user.Name = params.Name
	}
	if params.Email != "" {
		user.Email = model.NormalizeEmail(params.Email)
	}
	if params.Role != "" {
		user.Role = params.Role
	}
	user.UpdatedAt = time.Now()

	if err := s.validator.ValidateUpdate(ctx, user, previousEmail); err != nil {
		return model.User{}, err
	}

	updated, err := s.store.Update(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

// ChangePassword regenerates the stored credential from a new plaintext.
// Salt and derived key are replaced together; the previous pair is discarded.
func (s *User) ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := user.SetSecret(newPassword); err != nil {
		return model.User{}, fmt.Errorf("failed to set secret: %w", err)
	}
	user.UpdatedAt = time.Now()

	if err := s.validator.ValidateUpdate(ctx, user, user.Email); err != nil {
		return model.User{}, err
	}

	updated, err := s.store.Update(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: password changed", "user_id", id)

	return updated, nil
}

// Delete removes a user record.
func (s *User) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Login checks a plaintext secret against the stored credential and, on
// success, returns a signed identifier carrying the token view. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *User) Login(ctx context.Context, email, password string) (string, model.User, error) {
	user, err := s.store.GetByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.User{}, model.ErrInvalidCredentials
		}
		return "", model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.Authenticate(password) {
		s.logger.Info("User service: failed login attempt", "user_id", user.ID)
		return "", model.User{}, model.ErrInvalidCredentials
	}

	signed, err := s.tokens.Generate(user.Token())
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, user, nil
}
