package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacation-rentals/dto"
)

func aliceForm() dto.RegisterForm {
	return dto.RegisterForm{
		Name:        "Alice",
		Email:       "a@x.com",
		Password:    "secret",
		CountryCode: "1",
		PhoneNumber: "5551234567",
	}
}

// Registration stores a hashed password and the formatted phone number.
func TestRegister_Success(t *testing.T) {
	repo := newMockUserRepository()
	tx := &passthroughTransactor{}
	service := NewUserService(repo, tx)

	user, err := service.Register(context.Background(), aliceForm())

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "+15551234567", user.PhoneNumber)
	assert.NotEqual(t, "secret", user.Password, "password should be hashed, not plain text")
	assert.Len(t, repo.users, 1)
	assert.Equal(t, 1, tx.calls)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, &passthroughTransactor{})

	_, err := service.Register(context.Background(), aliceForm())
	require.NoError(t, err)

	second := aliceForm()
	second.Name = "Alice Again"
	second.Email = "  A@X.com "
	user, err := service.Register(context.Background(), second)

	assert.ErrorIs(t, err, ErrEmailInUse)
	assert.Nil(t, user)
	assert.Len(t, repo.users, 1)
}

func TestRegister_RepositoryFailure(t *testing.T) {
	repo := newMockUserRepository()
	repo.failWith = errDatabaseDown
	service := NewUserService(repo, &passthroughTransactor{})

	user, err := service.Register(context.Background(), aliceForm())

	assert.ErrorIs(t, err, errDatabaseDown)
	assert.NotErrorIs(t, err, ErrEmailInUse)
	assert.Nil(t, user)
}

// 40 two-byte runes pass a rune-counted max=72 but exceed bcrypt's limit.
func TestRegister_PasswordTooLong(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, &passthroughTransactor{})
	form := aliceForm()
	form.Password = strings.Repeat("é", 40)

	user, err := service.Register(context.Background(), form)

	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.Nil(t, user)
	assert.Empty(t, repo.users)
}

func TestAuthenticate_Success(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, &passthroughTransactor{})
	created, err := service.Register(context.Background(), aliceForm())
	require.NoError(t, err)

	user, err := service.Authenticate(context.Background(), dto.LoginForm{Email: "a@x.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	service := NewUserService(newMockUserRepository(), &passthroughTransactor{})

	user, err := service.Authenticate(context.Background(), dto.LoginForm{Email: "nobody@x.com", Password: "secret"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, &passthroughTransactor{})
	_, err := service.Register(context.Background(), aliceForm())
	require.NoError(t, err)

	user, err := service.Authenticate(context.Background(), dto.LoginForm{Email: "a@x.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestAuthenticate_RepositoryFailureIsNotInvalidCredentials(t *testing.T) {
	repo := newMockUserRepository()
	repo.failWith = errDatabaseDown
	service := NewUserService(repo, &passthroughTransactor{})

	_, err := service.Authenticate(context.Background(), dto.LoginForm{Email: "a@x.com", Password: "secret"})

	assert.ErrorIs(t, err, errDatabaseDown)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoadUser(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, &passthroughTransactor{})
	created, err := service.Register(context.Background(), aliceForm())
	require.NoError(t, err)

	found := service.LoadUser(context.Background(), created.ID)
	assert.Equal(t, LoadFound, found.Status)
	require.NotNil(t, found.User)
	assert.Equal(t, created.ID, found.User.ID)

	missing := service.LoadUser(context.Background(), 999)
	assert.Equal(t, LoadNotFound, missing.Status)
	assert.Nil(t, missing.User)
	assert.NoError(t, missing.Err)

	repo.failWith = errDatabaseDown
	failed := service.LoadUser(context.Background(), created.ID)
	assert.Equal(t, LoadFailed, failed.Status)
	assert.Nil(t, failed.User)
	assert.ErrorIs(t, failed.Err, errDatabaseDown)
}

func TestLoadStatusString(t *testing.T) {
	assert.Equal(t, "found", LoadFound.String())
	assert.Equal(t, "not_found", LoadNotFound.String())
	assert.Equal(t, "failed", LoadFailed.String())
}
