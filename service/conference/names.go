package conference

import (
	"context"
	"time"

	"github.com/QuangTung97/conference/repository"
	"github.com/patrickmn/go-cache"
)

const (
	nameExpiration      = 5 * time.Minute
	nameCleanupInterval = 10 * time.Minute
)

// nameCache keeps organizer display names, a missing profile is not cached
// because the registration workflow may create it at any time
type nameCache struct {
	profileRepo repository.Profile
	cache       *cache.Cache
}

func newNameCache(profileRepo repository.Profile) *nameCache {
	return &nameCache{
		profileRepo: profileRepo,
		cache:       cache.New(nameExpiration, nameCleanupInterval),
	}
}

func (c *nameCache) getNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	for _, userID := range userIDs {
		if _, existed := names[userID]; existed {
			continue
		}

		if value, found := c.cache.Get(userID); found {
			names[userID] = value.(string)
			continue
		}

		profile, err := c.profileRepo.GetProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		names[userID] = profile.Profile.DisplayName
		if profile.Valid {
			c.cache.SetDefault(userID, profile.Profile.DisplayName)
		}
	}
	return names, nil
}

func (c *nameCache) invalidate(userID string) {
	c.cache.Delete(userID)
}
