package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dikiindrasaputra/omahjajanwatir/cmd/config"
	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	profilerepo "github.com/dikiindrasaputra/omahjajanwatir/repository/profile"
	redisrepo "github.com/dikiindrasaputra/omahjajanwatir/repository/redis"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/errors"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthApp interface {
	SignUp(ctx context.Context, req *model.SignupRequest) error
	Login(ctx context.Context, req *model.LoginRequest) (string, error)
	Logout(ctx context.Context, sessionID string)
	ValidateSession(ctx context.Context, tokenString string) (string, string, error)
	LoadIdentity(ctx context.Context, userID string) (model.Identity, bool)
}

type authAppImpl struct {
	config      *config.Config
	supa        *supabase.Client
	profileRepo profilerepo.ProfileRepository
	redisRepo   redisrepo.Repository
}

func NewAuthApp(config *config.Config, supa *supabase.Client, profileRepo profilerepo.ProfileRepository, redisRepo redisrepo.Repository) AuthApp {
	return &authAppImpl{
		config:      config,
		supa:        supa,
		profileRepo: profileRepo,
		redisRepo:   redisRepo,
	}
}

// SignUp registers an account with the hosted auth provider, then creates
// the matching profile row.
func (s *authAppImpl) SignUp(ctx context.Context, req *model.SignupRequest) error {
	if s.supa == nil {
		return errors.SetCustomError(constant.ErrRemoteUnavailable)
	}

	user, err := s.supa.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		logger.Error("[SignUp] err supa.SignUp", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	profile := &model.Profile{
		UserID:      user.ID,
		Username:    req.Username,
		NamaLengkap: req.NamaLengkap,
		AvatarURL:   nil,
	}
	if err := s.profileRepo.Insert(ctx, profile); err != nil {
		logger.Error("[SignUp] err profileRepo.Insert", zap.String("user_id", user.ID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

// Login signs in against the hosted provider and issues a cookie session
// token backed by a Redis-side session record.
func (s *authAppImpl) Login(ctx context.Context, req *model.LoginRequest) (string, error) {
	if s.supa == nil {
		return "", errors.SetCustomError(constant.ErrRemoteUnavailable)
	}

	session, err := s.supa.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		var remote *supabase.RemoteError
		if stderrors.As(err, &remote) && remote.StatusCode >= 400 && remote.StatusCode < 500 {
			return "", errors.SetCustomError(constant.ErrCredentialRejected)
		}
		logger.Error("[Login] err supa.SignInWithPassword", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	token, jti, err := s.generateSessionToken(session.User.ID)
	if err != nil {
		logger.Error("[Login] err generateSessionToken", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	sess := model.SessionData{
		UserID:      session.User.ID,
		AccessToken: session.AccessToken,
	}
	if err := s.redisRepo.SetSession(ctx, jti, sess, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return token, nil
}

// Logout drops the server-side session and revokes the provider session
// best-effort; a failed revoke never blocks logging out locally.
func (s *authAppImpl) Logout(ctx context.Context, sessionID string) {
	sess, err := s.redisRepo.GetSession(ctx, sessionID)
	if err == nil && sess != nil && sess.AccessToken != "" && s.supa != nil {
		if err := s.supa.SignOut(ctx, sess.AccessToken); err != nil {
			logger.Warn("[Logout] err supa.SignOut", zap.String("error", err.Error()))
		}
	}

	if err := s.redisRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.Warn("[Logout] err DeleteSession", zap.String("error", err.Error()))
	}
}

// ValidateSession parses the cookie token and checks it against the Redis
// session record. Returns the session id and the user id.
func (s *authAppImpl) ValidateSession(ctx context.Context, tokenString string) (string, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.SessionSecret), nil
	})
	if err != nil {
		return "", "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid claims")
	}

	userID := claims.Subject
	if userID == "" {
		return "", "", fmt.Errorf("token missing subject")
	}

	jti := claims.ID
	if jti == "" {
		return "", "", fmt.Errorf("token missing jti")
	}

	sess, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return "", "", fmt.Errorf("invalid or expired session")
	}
	if sess == nil || sess.UserID != userID {
		return "", "", fmt.Errorf("token does not match user session")
	}

	return jti, userID, nil
}

// LoadIdentity resolves the minimal identity for a validated user id. Any
// failure means "not logged in", never a fatal error.
func (s *authAppImpl) LoadIdentity(ctx context.Context, userID string) (model.Identity, bool) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		logger.Warn("[LoadIdentity] err profileRepo.Get", zap.String("user_id", userID), zap.String("error", err.Error()))
		return model.Identity{}, false
	}
	return model.Identity{ID: userID, Username: profile.Username}, true
}

// generateSessionToken creates the signed cookie token for the user
func (s *authAppImpl) generateSessionToken(userID string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.SessionExpTime)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.SessionSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
