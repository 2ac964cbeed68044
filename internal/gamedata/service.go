package gamedata

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/jdrosales/playmerch-backend/pkg/config"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
	"github.com/jdrosales/playmerch-backend/pkg/valorantapi"
)

const actSeasonType = "EAresSeasonType::Act"

// Region countdown offsets relative to the act end time. Riot staggers the
// act rollover per region.
var regionOffsets = []struct {
	Region string
	Offset time.Duration
}{
	{"NA", 0},
	{"LATAM", 1 * time.Hour},
	{"EU", 6 * time.Hour},
	{"AP", 15 * time.Hour},
}

type apiClient interface {
	Seasons(ctx context.Context) ([]valorantapi.Season, error)
	Maps(ctx context.Context) ([]valorantapi.Map, error)
	Bundles(ctx context.Context) ([]valorantapi.Bundle, error)
	WeaponSkins(ctx context.Context) ([]valorantapi.WeaponSkin, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(parts ...string) string
}

// Service serves the countdown-page data pulled from valorant-api.com.
// Responses are cached in Redis so page loads do not fan out upstream.
type Service interface {
	ActiveAct(ctx context.Context) (*ActView, error)
	CurrentMaps(ctx context.Context) ([]MapView, error)
	LatestBundles(ctx context.Context) (*BundleShowcase, error)
	RandomSkin(ctx context.Context) (*SkinView, error)
}

type service struct {
	api   apiClient
	cache cacheStore
	cfg   config.GameDataConfig
	now   func() time.Time
	intn  func(n int) int
}

// NewService builds a gamedata service with the required dependencies.
// cache may be nil; every request then goes upstream.
func NewService(api apiClient, cache cacheStore, cfg config.GameDataConfig) (Service, error) {
	if api == nil {
		return nil, fmt.Errorf("valorant api client required")
	}
	return &service{
		api:   api,
		cache: cache,
		cfg:   cfg,
		now:   time.Now,
		intn:  rand.Intn,
	}, nil
}

func (s *service) ActiveAct(ctx context.Context) (*ActView, error) {
	now := s.now().UTC()

	var view ActView
	if s.cacheGet(ctx, &view, "act") {
		// the cached document holds the act window; the countdown is
		// always computed fresh
		view.applyCountdown(now)
		return &view, nil
	}

	seasons, err := s.api.Seasons(ctx)
	if err != nil {
		return nil, err
	}

	for _, season := range seasons {
		if season.Type != actSeasonType || season.StartTime == nil || season.EndTime == nil {
			continue
		}
		if now.Before(*season.StartTime) || !now.Before(*season.EndTime) {
			continue
		}

		regionEnds := make([]RegionEnd, 0, len(regionOffsets))
		for _, ro := range regionOffsets {
			regionEnds = append(regionEnds, RegionEnd{
				Region: ro.Region,
				EndsAt: season.EndTime.Add(ro.Offset),
			})
		}
		view = ActView{
			UUID:       season.UUID,
			Name:       actName(season),
			Episode:    actEpisode(season),
			StartTime:  *season.StartTime,
			EndTime:    *season.EndTime,
			RegionEnds: regionEnds,
		}
		s.cacheSet(ctx, view, "act")
		view.applyCountdown(now)
		return &view, nil
	}

	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no active act")
}

// actName prefers the season title, e.g. "EPISODE 8 // ACT III", over the
// bare act label.
func actName(season valorantapi.Season) string {
	if season.Title != "" {
		return season.Title
	}
	return season.DisplayName
}

// actEpisode is the part of the title before the "//" separator.
func actEpisode(season valorantapi.Season) string {
	episode := strings.TrimSpace(strings.SplitN(season.Title, "//", 2)[0])
	if episode == "" {
		return season.DisplayName
	}
	return episode
}

func (s *service) CurrentMaps(ctx context.Context) ([]MapView, error) {
	var views []MapView
	if s.cacheGet(ctx, &views, "maps") {
		return views, nil
	}

	maps, err := s.api.Maps(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]valorantapi.Map, len(maps))
	for _, m := range maps {
		byName[strings.ToLower(m.DisplayName)] = m
	}

	// rotation order comes from config, not from the API listing
	views = make([]MapView, 0, len(s.cfg.MapRotation))
	for _, name := range s.cfg.MapRotation {
		m, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		views = append(views, MapView{
			UUID:        m.UUID,
			Name:        m.DisplayName,
			Coordinates: m.Coordinates,
			Splash:      m.Splash,
			ListIcon:    m.ListViewIcon,
		})
	}

	s.cacheSet(ctx, views, "maps")
	return views, nil
}

func (s *service) LatestBundles(ctx context.Context) (*BundleShowcase, error) {
	var showcase BundleShowcase
	if s.cacheGet(ctx, &showcase, "bundles") {
		return &showcase, nil
	}

	bundles, err := s.api.Bundles(ctx)
	if err != nil {
		return nil, err
	}

	// entries without an id or any icon cannot be rendered
	usable := bundles[:0]
	for _, b := range bundles {
		if b.UUID == "" || (b.DisplayIcon == "" && b.DisplayIcon2 == "") {
			continue
		}
		usable = append(usable, b)
	}

	// newest bundles carry lexicographically larger uuids in practice
	sort.Slice(usable, func(i, j int) bool {
		return usable[i].UUID > usable[j].UUID
	})

	views := make([]BundleView, 0, len(usable))
	for _, b := range usable {
		image := b.DisplayIcon2
		if image == "" {
			image = b.DisplayIcon
		}
		views = append(views, BundleView{
			UUID:        b.UUID,
			Name:        b.DisplayName,
			Description: b.Description,
			Image:       image,
			PromoImage:  b.VerticalPromoImage,
		})
	}

	showcase = BundleShowcase{Gallery: []BundleView{}}
	if len(views) > 0 {
		featured := views[0]
		showcase.Featured = &featured
	}
	if len(views) > 1 {
		gallery := views[1:]
		if len(gallery) > 4 {
			gallery = gallery[:4]
		}
		showcase.Gallery = gallery
	}

	s.cacheSet(ctx, showcase, "bundles")
	return &showcase, nil
}

func (s *service) RandomSkin(ctx context.Context) (*SkinView, error) {
	var candidates []SkinView
	if !s.cacheGet(ctx, &candidates, "skins") {
		skins, err := s.api.WeaponSkins(ctx)
		if err != nil {
			return nil, err
		}

		candidates = make([]SkinView, 0, len(skins))
		for _, skin := range skins {
			if isDefaultSkin(skin.DisplayName) {
				continue
			}
			image := skin.DisplayIcon
			if image == "" && len(skin.Chromas) > 0 {
				image = skin.Chromas[0].FullRender
			}
			candidates = append(candidates, SkinView{
				UUID:  skin.UUID,
				Name:  skin.DisplayName,
				Image: image,
			})
		}
		s.cacheSet(ctx, candidates, "skins")
	}

	if len(candidates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no skins available")
	}
	picked := candidates[s.intn(len(candidates))]
	return &picked, nil
}

// isDefaultSkin filters the placeholder entries the API returns for every
// weapon's stock appearance.
func isDefaultSkin(name string) bool {
	return strings.Contains(name, "Standard") || strings.Contains(name, "Random")
}

func (s *service) cacheGet(ctx context.Context, target any, parts ...string) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, s.cache.CacheKey(append([]string{"gamedata"}, parts...)...))
	if err != nil || raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), target) == nil
}

func (s *service) cacheSet(ctx context.Context, value any, parts ...string) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	// a failed cache write only costs the next request an upstream call
	_ = s.cache.Set(ctx, s.cache.CacheKey(append([]string{"gamedata"}, parts...)...), payload, s.cfg.CacheTTL)
}
