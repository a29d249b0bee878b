package announcement

import (
	"context"

	"github.com/QuangTung97/conference/pkg/otellib"
	"go.uber.org/zap"
)

// FeaturedKey is the cache key of the featured speaker announcement
const FeaturedKey = "FEATURED_SPEAKER"

const featuredPrefix = "Today's featured speaker is "

// Featured keeps the featured speaker announcement, it is only ever written by session creation
// so the entry does not expire
type Featured struct {
	cache Cache
}

// NewFeatured ...
func NewFeatured(cache Cache) *Featured {
	return &Featured{cache: cache}
}

// Set announces the speaker, a cache failure is logged and the announcement is still returned
func (f *Featured) Set(ctx context.Context, speaker string) string {
	featured := featuredPrefix + speaker
	if err := f.cache.Set(ctx, FeaturedKey, featured, 0); err != nil {
		otellib.Extract(ctx).Warn("set featured speaker", zap.Error(err))
	}
	return featured
}

// Get returns the announcement or empty string when there is none
func (f *Featured) Get(ctx context.Context) string {
	featured, ok, err := f.cache.Get(ctx, FeaturedKey)
	if err != nil {
		otellib.Extract(ctx).Warn("get featured speaker", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return featured
}
