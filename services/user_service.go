package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vacation-rentals/domain"
	"vacation-rentals/dto"
	"vacation-rentals/repositories"
	"vacation-rentals/utils"
)

// LoadStatus says how a session user lookup ended.
type LoadStatus int

const (
	LoadFound LoadStatus = iota
	LoadNotFound
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadFound:
		return "found"
	case LoadNotFound:
		return "not_found"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadResult is the outcome of resolving a session's user id. Only
// LoadFound carries a User; LoadFailed carries the underlying error.
type LoadResult struct {
	Status LoadStatus
	User   *domain.User
	Err    error
}

// UserService covers registration, login and the session user loader.
type UserService interface {
	Register(ctx context.Context, form dto.RegisterForm) (*domain.User, error)
	Authenticate(ctx context.Context, form dto.LoginForm) (*domain.User, error)
	LoadUser(ctx context.Context, id uint) LoadResult
}

type userService struct {
	repo repositories.UserRepository
	tx   repositories.Transactor
}

// NewUserService wires the service to its repository and unit of work.
func NewUserService(repo repositories.UserRepository, tx repositories.Transactor) UserService {
	return &userService{repo: repo, tx: tx}
}

// Register creates an account. The email check and the insert run in
// one transaction; a duplicate reported by the unique index is treated
// the same as one found by the check.
func (s *userService) Register(ctx context.Context, form dto.RegisterForm) (*domain.User, error) {
	email := normalizeEmail(form.Email)

	// 1. Hash before opening the transaction
	hashedPassword, err := utils.HashPassword(form.Password)
	if err != nil {
		// bcrypt caps input at 72 bytes; max=72 on the form counts runes.
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:        strings.TrimSpace(form.Name),
		Email:       email,
		Password:    hashedPassword,
		PhoneNumber: formatPhoneNumber(form.CountryCode, form.PhoneNumber),
	}

	// 2. Check + insert as a single unit of work
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		count, err := s.repo.CountByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("count users by email: %w", err)
		}
		if count > 0 {
			return ErrEmailInUse
		}

		if err := s.repo.Create(ctx, user); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return ErrEmailInUse
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate returns the user for a matching email/password pair.
// Unknown email and wrong password both give ErrInvalidCredentials.
func (s *userService) Authenticate(ctx context.Context, form dto.LoginForm) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(form.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if !utils.CheckPasswordHash(form.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// LoadUser resolves the user id stored in a session.
func (s *userService) LoadUser(ctx context.Context, id uint) LoadResult {
	user, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return LoadResult{Status: LoadFound, User: user}
	case errors.Is(err, repositories.ErrNotFound):
		return LoadResult{Status: LoadNotFound}
	default:
		return LoadResult{Status: LoadFailed, Err: err}
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// formatPhoneNumber stores numbers as +<country code><number>.
func formatPhoneNumber(countryCode, number string) string {
	return "+" + strings.TrimPrefix(strings.TrimSpace(countryCode), "+") + strings.TrimSpace(number)
}
