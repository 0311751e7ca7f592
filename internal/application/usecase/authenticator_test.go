package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidvault/internal/domain/dto"
	"vidvault/internal/domain/entity"
	"vidvault/internal/infrastructure/session"
	"vidvault/internal/infrastructure/userstore"
)

func newAuthenticator(t *testing.T) *Authenticator {
	t.Helper()

	users, err := userstore.NewFileStore(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, err)

	return NewAuthenticator(users, session.NewMemoryStore(session.Config{TTLHours: 1}))
}

func validRegistration() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Username: "ada",
		Password: "s3cret!",
	}
}

func TestRegisterValidation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
	}{
		{"missing name", func(r *dto.RegisterRequest) { r.Name = "" }},
		{"missing email", func(r *dto.RegisterRequest) { r.Email = "" }},
		{"missing username", func(r *dto.RegisterRequest) { r.Username = "" }},
		{"missing password", func(r *dto.RegisterRequest) { r.Password = "" }},
		{"short username", func(r *dto.RegisterRequest) { r.Username = "ab" }},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "12345" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := newAuthenticator(t)
			req := validRegistration()
			tc.mutate(&req)

			err := a.Register(context.Background(), req)

			var verr *entity.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, validRegistration()))

	token, err := a.Login(ctx, "ada", "s3cret!")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := a.Resolve(ctx, token)
	require.NoError(t, err)
	assert.NotEmpty(t, userID)

	require.NoError(t, a.Logout(ctx, token))

	_, err = a.Resolve(ctx, token)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestLoginUsernameIsCaseInsensitive(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, validRegistration()))

	_, err := a.Login(ctx, "  ADA ", "s3cret!")
	assert.NoError(t, err)
}

func TestLoginUniformFailureMessage(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, validRegistration()))

	_, wrongPassword := a.Login(ctx, "ada", "wrong")
	_, unknownUser := a.Login(ctx, "nobody", "s3cret!")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
}

func TestRegisterDuplicates(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, validRegistration()))

	dupUsername := validRegistration()
	dupUsername.Email = "other@example.com"
	var verr *entity.ValidationError
	require.ErrorAs(t, a.Register(ctx, dupUsername), &verr)
	assert.Equal(t, "username-taken", verr.Reason)

	dupEmail := validRegistration()
	dupEmail.Username = "grace"
	require.ErrorAs(t, a.Register(ctx, dupEmail), &verr)
	assert.Equal(t, "email-taken", verr.Reason)
}

func TestResolveEmptyToken(t *testing.T) {
	a := newAuthenticator(t)

	_, err := a.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}
