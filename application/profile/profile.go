package profile

import (
	"context"
	stderrors "errors"

	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	profilerepo "github.com/dikiindrasaputra/omahjajanwatir/repository/profile"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/errors"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/logger"
	"go.uber.org/zap"
)

type ProfileApp interface {
	Get(ctx context.Context, userID string) (*model.Profile, error)
	Update(ctx context.Context, userID string, req *model.ProfileUpdateRequest) error
}

type profileAppImpl struct {
	profileRepo profilerepo.ProfileRepository
}

func NewProfileApp(profileRepo profilerepo.ProfileRepository) ProfileApp {
	return &profileAppImpl{profileRepo: profileRepo}
}

func (s *profileAppImpl) Get(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("[GetProfile] err profileRepo.Get", zap.String("user_id", userID), zap.String("error", err.Error()))
		return nil, mapRemoteErr(err)
	}
	return profile, nil
}

func (s *profileAppImpl) Update(ctx context.Context, userID string, req *model.ProfileUpdateRequest) error {
	if err := s.profileRepo.Update(ctx, userID, req); err != nil {
		logger.Error("[UpdateProfile] err profileRepo.Update", zap.String("user_id", userID), zap.String("error", err.Error()))
		return mapRemoteErr(err)
	}
	return nil
}

func mapRemoteErr(err error) error {
	switch {
	case stderrors.Is(err, supabase.ErrNotFound):
		return errors.SetCustomError(constant.ErrNotFound)
	case stderrors.Is(err, supabase.ErrNotConnected):
		return errors.SetCustomError(constant.ErrRemoteUnavailable)
	default:
		return errors.SetCustomError(constant.ErrInternal)
	}
}
