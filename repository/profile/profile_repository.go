package profile

import (
	"context"

	"github.com/dikiindrasaputra/omahjajanwatir/model"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
)

type REST struct {
	client *supabase.Client
}

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*model.Profile, error)
	Insert(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, userID string, req *model.ProfileUpdateRequest) error
}

func NewProfileRepository(client *supabase.Client) ProfileRepository {
	return &REST{client: client}
}

func (r *REST) Get(ctx context.Context, userID string) (*model.Profile, error) {
	if r.client == nil {
		return nil, supabase.ErrNotConnected
	}

	var profile model.Profile
	err := r.client.From("profiles").
		Select("*").
		Eq("user_id", userID).
		Single().
		Get(ctx, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *REST) Insert(ctx context.Context, profile *model.Profile) error {
	if r.client == nil {
		return supabase.ErrNotConnected
	}
	return r.client.From("profiles").Insert(ctx, profile, nil)
}

func (r *REST) Update(ctx context.Context, userID string, req *model.ProfileUpdateRequest) error {
	if r.client == nil {
		return supabase.ErrNotConnected
	}

	values := map[string]any{
		"username":     req.Username,
		"nama_lengkap": req.NamaLengkap,
	}
	if req.AvatarURL != "" {
		values["avatar_url"] = req.AvatarURL
	} else {
		values["avatar_url"] = nil
	}

	return r.client.From("profiles").
		Eq("user_id", userID).
		Update(ctx, values)
}
