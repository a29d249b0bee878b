package repository

import (
	"context"

	"github.com/QuangTung97/conference/model"
)

//go:generate moq -out profile_mock.go . Profile

// Profile ...
type Profile interface {
	GetProfile(ctx context.Context, id string) (model.NullProfile, error)
	InsertProfile(ctx context.Context, profile model.Profile) error
	SaveProfile(ctx context.Context, profile model.Profile) error
}

type profileImpl struct {
}

// NewProfile ...
func NewProfile() Profile {
	return &profileImpl{}
}

// GetProfile ...
func (r *profileImpl) GetProfile(ctx context.Context, id string) (model.NullProfile, error) {
	db := GetReadonly(ctx)

	var profiles []model.Profile
	err := db.SelectContext(ctx, &profiles, `
SELECT id, display_name, main_email, tee_shirt_size, version
FROM profile WHERE id = ?
`, id)
	if err != nil {
		return model.NullProfile{}, err
	}
	if len(profiles) == 0 {
		return model.NullProfile{}, nil
	}
	profile := profiles[0]

	var keys []string
	err = db.SelectContext(ctx, &keys, `
SELECT conference_id FROM profile_conference WHERE profile_id = ? ORDER BY conference_id
`, id)
	if err != nil {
		return model.NullProfile{}, err
	}
	profile.ConferenceKeysToAttend = keys

	return model.NullProfile{
		Valid:   true,
		Profile: profile,
	}, nil
}

func insertAttendance(ctx context.Context, profile model.Profile) error {
	tx := GetTx(ctx)
	for _, key := range profile.ConferenceKeysToAttend {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO profile_conference (profile_id, conference_id) VALUES (?, ?)`, profile.ID, key)
		if err != nil {
			return err
		}
	}
	return nil
}

// InsertProfile ...
func (r *profileImpl) InsertProfile(ctx context.Context, profile model.Profile) error {
	query := `
INSERT INTO profile (id, display_name, main_email, tee_shirt_size, version)
VALUES (:id, :display_name, :main_email, :tee_shirt_size, :version)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, profile)
	if err != nil {
		return err
	}
	return insertAttendance(ctx, profile)
}

// SaveProfile writes display fields and the attendance set, profile.Version must be the version that was read
func (r *profileImpl) SaveProfile(ctx context.Context, profile model.Profile) error {
	query := `
UPDATE profile SET
	display_name = :display_name,
	main_email = :main_email,
	tee_shirt_size = :tee_shirt_size,
	version = version + 1
WHERE id = :id AND version = :version
`
	tx := GetTx(ctx)
	result, err := tx.NamedExecContext(ctx, query, profile)
	if err != nil {
		return err
	}
	if err := checkVersioned(result, "profile", profile.ID); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM profile_conference WHERE profile_id = ?`, profile.ID)
	if err != nil {
		return err
	}
	return insertAttendance(ctx, profile)
}
