package profile_test

import (
	"context"
	"testing"

	appprofile "github.com/dikiindrasaputra/omahjajanwatir/application/profile"
	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	profilemocks "github.com/dikiindrasaputra/omahjajanwatir/mocks/repository/profile"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
	cerr "github.com/dikiindrasaputra/omahjajanwatir/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileApp_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		profileRepo := profilemocks.NewProfileRepository(t)
		profileRepo.
			On("Get", mock.Anything, "u-1").
			Return(&model.Profile{UserID: "u-1", Username: "budi", NamaLengkap: "Budi Santoso"}, nil).
			Once()

		app := appprofile.NewProfileApp(profileRepo)

		got, err := app.Get(context.Background(), "u-1")
		assert.NoError(t, err)
		assert.Equal(t, "budi", got.Username)
	})

	t.Run("error: missing profile row", func(t *testing.T) {
		profileRepo := profilemocks.NewProfileRepository(t)
		profileRepo.
			On("Get", mock.Anything, "u-1").
			Return(nil, supabase.ErrNotFound).
			Once()

		app := appprofile.NewProfileApp(profileRepo)

		got, err := app.Get(context.Background(), "u-1")
		assert.Equal(t, cerr.SetCustomError(constant.ErrNotFound), err)
		assert.Nil(t, got)
	})
}

func TestProfileApp_Update(t *testing.T) {
	req := &model.ProfileUpdateRequest{Username: "budi", NamaLengkap: "Budi Santoso", AvatarURL: "https://cdn.example.com/budi.png"}

	t.Run("success", func(t *testing.T) {
		profileRepo := profilemocks.NewProfileRepository(t)
		profileRepo.
			On("Update", mock.Anything, "u-1", req).
			Return(nil).
			Once()

		app := appprofile.NewProfileApp(profileRepo)

		assert.NoError(t, app.Update(context.Background(), "u-1", req))
	})

	t.Run("error: store not configured", func(t *testing.T) {
		profileRepo := profilemocks.NewProfileRepository(t)
		profileRepo.
			On("Update", mock.Anything, "u-1", req).
			Return(supabase.ErrNotConnected).
			Once()

		app := appprofile.NewProfileApp(profileRepo)

		err := app.Update(context.Background(), "u-1", req)
		assert.Equal(t, cerr.SetCustomError(constant.ErrRemoteUnavailable), err)
	})
}
