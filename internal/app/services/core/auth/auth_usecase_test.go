package auth

import (
	"context"
	"strconv"
	"testing"

	"audit-service/internal/app/config"
	"audit-service/internal/app/models"
	"audit-service/internal/pkg/dto/requests"
	"audit-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	users  []*models.User
	nextID int
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *models.User) (string, error) {
	r.nextID++
	stored := *user
	stored.ID = "user-" + strconv.Itoa(r.nextID)
	r.users = append(r.users, &stored)
	return stored.ID, nil
}

func (r *fakeUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindByEmailOrUsername(_ context.Context, email, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email || user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

type fakeSessionService struct {
	sessions map[string]*models.Session
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{sessions: make(map[string]*models.Session)}
}

func (s *fakeSessionService) CreateSession(_ context.Context, session *models.Session) error {
	s.sessions[session.SessionID] = session
	return nil
}

func (s *fakeSessionService) GetSession(_ context.Context, sessionID string) (*models.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (s *fakeSessionService) DeleteSession(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func newAuthTestUsecase() (*authUsecase, *fakeUserRepository, *fakeSessionService) {
	repo := &fakeUserRepository{}
	sessions := newFakeSessionService()
	uc := &authUsecase{
		UserRepository: repo,
		SessionService: sessions,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
		},
	}
	return uc, repo, sessions
}

func validRegister() *requests.Register {
	return &requests.Register{
		Name:     "Field Auditor",
		Email:    "auditor@example.com",
		Username: "auditor",
		Password: "s3cret-password",
	}
}

func TestAuth(t *testing.T) {
	ctx := context.Background()

	t.Run("register stores a hashed password", func(t *testing.T) {
		uc, repo, _ := newAuthTestUsecase()

		response, err := uc.Register(ctx, validRegister())
		require.NoError(t, err)
		assert.Equal(t, "auditor", response.Username)

		stored, _ := repo.FindByUsername(ctx, "auditor")
		require.NotNil(t, stored)
		assert.NotEqual(t, "s3cret-password", stored.Password)
		assert.Equal(t, defaultUserRole, stored.Role)
	})

	t.Run("register rejects duplicate email", func(t *testing.T) {
		uc, _, _ := newAuthTestUsecase()
		_, err := uc.Register(ctx, validRegister())
		require.NoError(t, err)

		duplicate := validRegister()
		duplicate.Username = "someone-else"
		_, err = uc.Register(ctx, duplicate)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("register rejects duplicate username", func(t *testing.T) {
		uc, _, _ := newAuthTestUsecase()
		_, err := uc.Register(ctx, validRegister())
		require.NoError(t, err)

		duplicate := validRegister()
		duplicate.Email = "other@example.com"
		_, err = uc.Register(ctx, duplicate)
		require.Error(t, err)
	})

	t.Run("register validates the payload", func(t *testing.T) {
		uc, _, _ := newAuthTestUsecase()

		request := validRegister()
		request.Password = "short"
		_, err := uc.Register(ctx, request)
		require.Error(t, err)
	})

	t.Run("login returns a token and creates a session", func(t *testing.T) {
		uc, _, sessions := newAuthTestUsecase()
		_, err := uc.Register(ctx, validRegister())
		require.NoError(t, err)

		response, err := uc.Login(ctx, &requests.Login{Username: "auditor", Password: "s3cret-password"})
		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Len(t, sessions.sessions, 1)
	})

	t.Run("login rejects a wrong password", func(t *testing.T) {
		uc, _, _ := newAuthTestUsecase()
		_, err := uc.Register(ctx, validRegister())
		require.NoError(t, err)

		_, err = uc.Login(ctx, &requests.Login{Username: "auditor", Password: "wrong"})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("login rejects an unknown user", func(t *testing.T) {
		uc, _, _ := newAuthTestUsecase()

		_, err := uc.Login(ctx, &requests.Login{Username: "ghost", Password: "whatever"})
		require.Error(t, err)
	})

	t.Run("logout removes the session", func(t *testing.T) {
		uc, _, sessions := newAuthTestUsecase()
		_, err := uc.Register(ctx, validRegister())
		require.NoError(t, err)

		_, err = uc.Login(ctx, &requests.Login{Username: "auditor", Password: "s3cret-password"})
		require.NoError(t, err)

		var sessionID string
		for id := range sessions.sessions {
			sessionID = id
		}
		require.NoError(t, uc.Logout(ctx, sessionID))
		assert.Empty(t, sessions.sessions)
	})
}
