package user

import (
	"context"
	"testing"

	userRepo "hotelier/database/repository/user"
	"hotelier/models"
	"hotelier/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}

func testService(repo *fakeUserRepo) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Logger: zap.NewNop()}
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := testService(repo)

	got, err := svc.Register(context.Background(), models.RegisterInput{
		Username: "alex",
		Email:    "  Alex@Example.COM ",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.Token)
	assert.Equal(t, "alex@example.com", got.User.Email)
	assert.Equal(t, models.RoleUser, got.User.Role)

	stored := repo.byEmail["alex@example.com"]
	require.NotNil(t, stored)
	// Only the hash is persisted, and it verifies against the password.
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))

	// The issued token carries the account's identity claims.
	userID, email, role, err := utils.ExtractClaimsFromToken(got.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
	assert.Equal(t, "alex@example.com", email)
	assert.Equal(t, models.RoleUser, role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := testService(repo)

	input := models.RegisterInput{Username: "alex", Email: "alex@example.com", Password: "correct horse"}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	var de *utils.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, utils.CodeValidation, de.Code)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := testService(repo)

	_, err := svc.Register(context.Background(), models.RegisterInput{
		Username: "alex", Email: "alex@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	got, err := svc.Authenticate(context.Background(), models.LoginInput{
		Email: "ALEX@example.com", Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Token)
	assert.Equal(t, "alex@example.com", got.User.Email)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := testService(repo)

	_, err := svc.Register(context.Background(), models.RegisterInput{
		Username: "alex", Email: "alex@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "alex@example.com", "incorrect horse"},
		{"unknown email", "nobody@example.com", "correct horse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), models.LoginInput{Email: tt.email, Password: tt.password})

			var de *utils.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, utils.CodeUnauthorized, de.Code)
			// Both failure modes read identically to the caller.
			assert.Equal(t, "Invalid email or password.", de.Message)
		})
	}
}

func TestGetUserByID(t *testing.T) {
	repo := newFakeUserRepo()
	svc := testService(repo)

	created, err := svc.Register(context.Background(), models.RegisterInput{
		Username: "alex", Email: "alex@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	got, err := svc.GetUserByID(context.Background(), created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alex", got.Username)

	_, err = svc.GetUserByID(context.Background(), "missing")
	var de *utils.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, utils.CodeNotFound, de.Code)
}
