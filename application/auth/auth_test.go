package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appauth "github.com/dikiindrasaputra/omahjajanwatir/application/auth"
	"github.com/dikiindrasaputra/omahjajanwatir/cmd/config"
	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	profilemocks "github.com/dikiindrasaputra/omahjajanwatir/mocks/repository/profile"
	redismocks "github.com/dikiindrasaputra/omahjajanwatir/mocks/repository/redis"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
	cerr "github.com/dikiindrasaputra/omahjajanwatir/utils/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			SessionSecret:  "test-secret",
			SessionExpTime: time.Hour,
		},
	}
}

func authServer(t *testing.T, handler http.HandlerFunc) *supabase.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return supabase.New(srv.URL, "anon-key")
}

func TestAuthApp_SignUp(t *testing.T) {
	req := &model.SignupRequest{
		Email:       "budi@example.com",
		Password:    "rahasia1",
		Username:    "budi",
		NamaLengkap: "Budi Santoso",
	}

	t.Run("success: provider account then profile row", func(t *testing.T) {
		supa := authServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/v1/signup", r.URL.Path)
			assert.Equal(t, "anon-key", r.Header.Get("apikey"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u-1","email":"budi@example.com"}`))
		})

		profileRepo := profilemocks.NewProfileRepository(t)
		profileRepo.
			On("Insert", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
				return p.UserID == "u-1" && p.Username == "budi" && p.NamaLengkap == "Budi Santoso" && p.AvatarURL == nil
			})).
			Return(nil).
			Once()

		app := appauth.NewAuthApp(testConfig(), supa, profileRepo, redismocks.NewRepository(t))

		err := app.SignUp(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("error: store not configured, no profile write attempted", func(t *testing.T) {
		app := appauth.NewAuthApp(testConfig(), nil, profilemocks.NewProfileRepository(t), redismocks.NewRepository(t))

		err := app.SignUp(context.Background(), req)
		assert.Equal(t, cerr.SetCustomError(constant.ErrRemoteUnavailable), err)
	})

	t.Run("error: provider rejects the signup", func(t *testing.T) {
		supa := authServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"msg":"User already registered"}`))
		})

		app := appauth.NewAuthApp(testConfig(), supa, profilemocks.NewProfileRepository(t), redismocks.NewRepository(t))

		err := app.SignUp(context.Background(), req)
		assert.Equal(t, cerr.SetCustomError(constant.ErrInvalidRequest), err)
	})

	t.Run("error: profile insert failure after the account exists", func(t *testing.T) {
		supa := authServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u-1","email":"budi@example.com"}`))
		})

		profileRepo := profilemocks.NewProfileRepository(t)
		profileRepo.
			On("Insert", mock.Anything, mock.Anything).
			Return(&supabase.RemoteError{StatusCode: 500, Message: "boom"}).
			Once()

		app := appauth.NewAuthApp(testConfig(), supa, profileRepo, redismocks.NewRepository(t))

		err := app.SignUp(context.Background(), req)
		assert.Equal(t, cerr.SetCustomError(constant.ErrInternal), err)
	})
}

func TestAuthApp_Login(t *testing.T) {
	req := &model.LoginRequest{Email: "budi@example.com", Password: "rahasia1"}

	t.Run("success: cookie token round-trips through ValidateSession", func(t *testing.T) {
		supa := authServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"at-1","token_type":"bearer","user":{"id":"u-1","email":"budi@example.com"}}`))
		})

		var storedJTI string
		var storedSess model.SessionData

		redisRepo := redismocks.NewRepository(t)
		redisRepo.
			On("SetSession", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("model.SessionData"), time.Hour).
			Run(func(args mock.Arguments) {
				storedJTI = args.String(1)
				storedSess = args.Get(2).(model.SessionData)
			}).
			Return(nil).
			Once()

		app := appauth.NewAuthApp(testConfig(), supa, profilemocks.NewProfileRepository(t), redisRepo)

		token, err := app.Login(context.Background(), req)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, model.SessionData{UserID: "u-1", AccessToken: "at-1"}, storedSess)

		redisRepo.
			On("GetSession", mock.Anything, storedJTI).
			Return(&storedSess, nil).
			Once()

		jti, userID, err := app.ValidateSession(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, storedJTI, jti)
		assert.Equal(t, "u-1", userID)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		supa := authServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
		})

		app := appauth.NewAuthApp(testConfig(), supa, profilemocks.NewProfileRepository(t), redismocks.NewRepository(t))

		token, err := app.Login(context.Background(), req)
		assert.Equal(t, cerr.SetCustomError(constant.ErrCredentialRejected), err)
		assert.Empty(t, token)
	})

	t.Run("error: provider outage", func(t *testing.T) {
		supa := authServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		app := appauth.NewAuthApp(testConfig(), supa, profilemocks.NewProfileRepository(t), redismocks.NewRepository(t))

		token, err := app.Login(context.Background(), req)
		assert.Equal(t, cerr.SetCustomError(constant.ErrInternal), err)
		assert.Empty(t, token)
	})

	t.Run("error: store not configured", func(t *testing.T) {
		app := appauth.NewAuthApp(testConfig(), nil, profilemocks.NewProfileRepository(t), redismocks.NewRepository(t))

		token, err := app.Login(context.Background(), req)
		assert.Equal(t, cerr.SetCustomError(constant.ErrRemoteUnavailable), err)
		assert.Empty(t, token)
	})
}

func TestAuthApp_ValidateSession(t *testing.T) {
	cfg := testConfig()

	signToken := func(secret, subject, jti string) string {
		claims := jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        jti,
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name     string
		token    string
		mockCall func(m *redismocks.Repository)
		wantErr  string
	}{
		{
			name:    "error: garbage token",
			token:   "not-a-jwt",
			wantErr: "invalid token",
		},
		{
			name:    "error: wrong signing key",
			token:   signToken("other-secret", "u-1", "jti-1"),
			wantErr: "invalid token",
		},
		{
			name:    "error: missing jti",
			token:   signToken(cfg.Auth.SessionSecret, "u-1", ""),
			wantErr: "token missing jti",
		},
		{
			name:  "error: session expired server-side",
			token: signToken(cfg.Auth.SessionSecret, "u-1", "jti-1"),
			mockCall: func(m *redismocks.Repository) {
				m.On("GetSession", mock.Anything, "jti-1").
					Return(nil, assert.AnError).
					Once()
			},
			wantErr: "invalid or expired session",
		},
		{
			name:  "error: session bound to a different user",
			token: signToken(cfg.Auth.SessionSecret, "u-1", "jti-1"),
			mockCall: func(m *redismocks.Repository) {
				m.On("GetSession", mock.Anything, "jti-1").
					Return(&model.SessionData{UserID: "u-2"}, nil).
					Once()
			},
			wantErr: "token does not match user session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(redisRepo)
			}

			app := appauth.NewAuthApp(cfg, nil, profilemocks.NewProfileRepository(t), redisRepo)

			jti, userID, err := app.ValidateSession(context.Background(), tt.token)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Empty(t, jti)
			assert.Empty(t, userID)
		})
	}
}

func TestAuthApp_Logout(t *testing.T) {
	t.Run("revokes the provider session and drops the local one", func(t *testing.T) {
		var signedOut bool
		supa := authServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/logout", r.URL.Path)
			assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
			signedOut = true
			w.WriteHeader(http.StatusNoContent)
		})

		redisRepo := redismocks.NewRepository(t)
		redisRepo.
			On("GetSession", mock.Anything, "jti-1").
			Return(&model.SessionData{UserID: "u-1", AccessToken: "at-1"}, nil).
			Once()
		redisRepo.
			On("DeleteSession", mock.Anything, "jti-1").
			Return(nil).
			Once()

		app := appauth.NewAuthApp(testConfig(), supa, profilemocks.NewProfileRepository(t), redisRepo)

		app.Logout(context.Background(), "jti-1")
		assert.True(t, signedOut)
	})

	t.Run("still drops the local session when the provider lookup fails", func(t *testing.T) {
		redisRepo := redismocks.NewRepository(t)
		redisRepo.
			On("GetSession", mock.Anything, "jti-1").
			Return(nil, assert.AnError).
			Once()
		redisRepo.
			On("DeleteSession", mock.Anything, "jti-1").
			Return(nil).
			Once()

		app := appauth.NewAuthApp(testConfig(), nil, profilemocks.NewProfileRepository(t), redisRepo)

		app.Logout(context.Background(), "jti-1")
	})
}

func TestAuthApp_LoadIdentity(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		profileRepo := profilemocks.NewProfileRepository(t)
		profileRepo.
			On("Get", mock.Anything, "u-1").
			Return(&model.Profile{UserID: "u-1", Username: "budi"}, nil).
			Once()

		app := appauth.NewAuthApp(testConfig(), nil, profileRepo, redismocks.NewRepository(t))

		identity, ok := app.LoadIdentity(context.Background(), "u-1")
		assert.True(t, ok)
		assert.Equal(t, model.Identity{ID: "u-1", Username: "budi"}, identity)
	})

	t.Run("any failure reads as logged out", func(t *testing.T) {
		profileRepo := profilemocks.NewProfileRepository(t)
		profileRepo.
			On("Get", mock.Anything, "u-1").
			Return(nil, supabase.ErrNotConnected).
			Once()

		app := appauth.NewAuthApp(testConfig(), nil, profileRepo, redismocks.NewRepository(t))

		identity, ok := app.LoadIdentity(context.Background(), "u-1")
		assert.False(t, ok)
		assert.Equal(t, model.Identity{}, identity)
	})
}
