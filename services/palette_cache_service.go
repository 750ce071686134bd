// services/palette_cache_service.go
package services

import (
	"context"
	"fmt"
	"log"

	"siyapi/engine"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"github.com/getsentry/sentry-go"
)

// Palette generation is pure, so cached entries never go stale; entries are
// kept without expiration and evicted only by cache pressure.

type PaletteCacheServiceProvider interface {
	GetPalette(ctx context.Context, base engine.Color) ([]engine.RecommendedColor, error)
}

// PaletteCacheService memoizes harmony palettes per base hex. Popular base
// colors (black tops, navy, white) dominate recommendation traffic, so the
// hit rate is high.
type PaletteCacheService struct {
	cache   *cache.LoadableCache[[]engine.RecommendedColor]
	harmony *engine.HarmonyEngine
}

func NewPaletteCacheService(harmony *engine.HarmonyEngine) (*PaletteCacheService, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 22, // 4MB, palettes are tiny
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}

	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)

	loadFunction := func(ctx context.Context, key any) ([]engine.RecommendedColor, []store.Option, error) {
		hex, ok := key.(string)
		if !ok {
			return nil, nil, fmt.Errorf("invalid key type provided to palette cache: expected string, got %T", key)
		}
		base, err := engine.ParseHexColor(hex)
		if err != nil {
			return nil, nil, err
		}
		return harmony.Palette(base), nil, nil
	}

	loadableCache := cache.NewLoadable[[]engine.RecommendedColor](
		loadFunction,
		cache.New[[]engine.RecommendedColor](ristrettoStore),
	)
	return &PaletteCacheService{cache: loadableCache, harmony: harmony}, nil
}

func (s *PaletteCacheService) GetPalette(ctx context.Context, base engine.Color) ([]engine.RecommendedColor, error) {
	if base.Hex == "" {
		return nil, fmt.Errorf("%w: empty hex", engine.ErrInvalidColorFormat)
	}
	return s.cache.Get(ctx, base.Hex)
}

// Palette implements engine.PaletteProvider. A cache system failure falls
// back to direct computation, palette math is cheap and must never block a
// recommendation.
func (s *PaletteCacheService) Palette(base engine.Color) []engine.RecommendedColor {
	palette, err := s.GetPalette(context.Background(), base)
	if err != nil {
		log.Printf("CACHE WARNING: palette cache failed for %q: %v. Computing directly.", base.Hex, err)
		sentry.CaptureException(err)
		return s.harmony.Palette(base)
	}
	return palette
}
