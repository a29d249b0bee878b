package conference

import (
	"context"

	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/service/ledger"
)

func newUserProfile(user User) model.Profile {
	profile := model.NewProfile(user.ID)
	profile.MainEmail = user.Email
	profile.DisplayName = user.Nickname()
	return profile
}

// loadProfile must be called inside an atomic unit, the profile is created on first access
func (s *Service) loadProfile(ctx context.Context, user User) (model.Profile, error) {
	result, err := s.profileRepo.GetProfile(ctx, user.ID)
	if err != nil {
		return model.Profile{}, err
	}
	if result.Valid {
		return result.Profile, nil
	}

	profile := newUserProfile(user)
	if err := s.profileRepo.InsertProfile(ctx, profile); err != nil {
		return model.Profile{}, err
	}
	s.names.invalidate(user.ID)
	return profile, nil
}

// GetProfile ...
func (s *Service) GetProfile(ctx context.Context, user User) (ProfileForm, error) {
	profile, err := ledger.RunAtomic(ctx, s.manager, func(ctx context.Context) (model.Profile, error) {
		return s.loadProfile(ctx, user)
	})
	if err != nil {
		return ProfileForm{}, err
	}
	return toProfileForm(profile), nil
}

// SaveProfile updates the display name and the tee shirt size, empty fields are left unchanged
func (s *Service) SaveProfile(ctx context.Context, user User, input ProfileInput) (ProfileForm, error) {
	profile, err := ledger.RunAtomic(ctx, s.manager, func(ctx context.Context) (model.Profile, error) {
		profile, err := s.loadProfile(ctx, user)
		if err != nil {
			return model.Profile{}, err
		}

		if err := applyProfileInput(&profile, input); err != nil {
			return model.Profile{}, err
		}

		if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
			return model.Profile{}, err
		}
		profile.Version++
		return profile, nil
	})
	if err != nil {
		return ProfileForm{}, err
	}

	s.names.invalidate(user.ID)
	return toProfileForm(profile), nil
}
