package gamedata

import (
	"math"
	"time"
)

// RegionEnd is the act end time shifted for one storefront region.
type RegionEnd struct {
	Region string    `json:"region"`
	EndsAt time.Time `json:"ends_at"`
}

// Countdown is the time left until the act ends, clamped at zero once
// the act is over.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// ActView describes the currently running competitive act.
type ActView struct {
	UUID       string      `json:"uuid"`
	Name       string      `json:"name"`
	Episode    string      `json:"episode"`
	StartTime  time.Time   `json:"start_time"`
	EndTime    time.Time   `json:"end_time"`
	Remaining  Countdown   `json:"remaining"`
	Progress   float64     `json:"progress_percent"`
	RegionEnds []RegionEnd `json:"region_ends"`
}

// applyCountdown recomputes the time-dependent fields against now, so a
// cached act document still serves a live countdown.
func (a *ActView) applyCountdown(now time.Time) {
	left := a.EndTime.Sub(now)
	if left < 0 {
		left = 0
	}
	a.Remaining = Countdown{
		Days:    int(left / (24 * time.Hour)),
		Hours:   int(left/time.Hour) % 24,
		Minutes: int(left/time.Minute) % 60,
		Seconds: int(left/time.Second) % 60,
	}

	span := a.EndTime.Sub(a.StartTime)
	if span <= 0 {
		a.Progress = 0
		return
	}
	pct := float64(now.Sub(a.StartTime)) / float64(span) * 100
	a.Progress = math.Min(100, math.Max(0, pct))
}

// MapView is one playable map from the active rotation.
type MapView struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Coordinates string `json:"coordinates,omitempty"`
	Splash      string `json:"splash,omitempty"`
	ListIcon    string `json:"list_icon,omitempty"`
}

// BundleView is one store bundle.
type BundleView struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	PromoImage  string `json:"promo_image,omitempty"`
}

// BundleShowcase is the landing-page bundle selection: the newest bundle
// plus a small gallery of the ones after it.
type BundleShowcase struct {
	Featured *BundleView  `json:"featured,omitempty"`
	Gallery  []BundleView `json:"gallery"`
}

// SkinView is a single weapon skin with a displayable image.
type SkinView struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}
