package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer("test-secret", time.Hour)
}

func TestSignup(t *testing.T) {
	t.Run("registers a new user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(nil, ErrNotFound)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *User) error {
				u.ID = uuid.New()
				return nil
			})

		service := NewService(repo, testIssuer())

		u, err := service.Signup(context.Background(), " Alice@Example.com ", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse battery")))
	})

	t.Run("taken email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").
			Return(&User{ID: uuid.New(), Email: "alice@example.com"}, nil)

		service := NewService(repo, testIssuer())

		_, err := service.Signup(context.Background(), "alice@example.com", "correct horse battery")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"malformed email", "not-an-email", "correct horse battery"},
		{"short password", "alice@example.com", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewService(NewMockRepository(ctrl), testIssuer())

			_, err := service.Signup(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hash)}

	t.Run("issues a verifiable token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(user, nil)

		issuer := testIssuer()
		service := NewService(repo, issuer)

		token, err := service.Login(context.Background(), "alice@example.com", "correct horse battery")
		require.NoError(t, err)

		userID, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(user, nil)

		service := NewService(repo, testIssuer())

		_, err := service.Login(context.Background(), "alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").Return(nil, ErrNotFound)

		service := NewService(repo, testIssuer())

		_, err := service.Login(context.Background(), "bob@example.com", "correct horse battery")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestTokenIssuer(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		issuer := testIssuer()
		userID := uuid.New()

		token, err := issuer.Issue(userID)
		require.NoError(t, err)

		got, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("expired token", func(t *testing.T) {
		issuer := NewTokenIssuer("test-secret", -time.Minute)

		token, err := issuer.Issue(uuid.New())
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenIssuer("other-secret", time.Hour).Issue(uuid.New())
		require.NoError(t, err)

		_, err = testIssuer().Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := testIssuer().Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestMiddleware(t *testing.T) {
	issuer := testIssuer()
	userID := uuid.New()

	service := NewService(nil, issuer)

	handler := Middleware(service)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := UserID(r.Context())
		require.True(t, ok)
		assert.Equal(t, userID, got)
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("valid token passes through", func(t *testing.T) {
		token, err := issuer.Issue(userID)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
