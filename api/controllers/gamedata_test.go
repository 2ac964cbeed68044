package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gamedatasvc "github.com/jdrosales/playmerch-backend/internal/gamedata"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
)

type stubGameDataService struct {
	act     *gamedatasvc.ActView
	maps    []gamedatasvc.MapView
	bundles *gamedatasvc.BundleShowcase
	skin    *gamedatasvc.SkinView
	err     error
}

func (s *stubGameDataService) ActiveAct(context.Context) (*gamedatasvc.ActView, error) {
	return s.act, s.err
}

func (s *stubGameDataService) CurrentMaps(context.Context) ([]gamedatasvc.MapView, error) {
	return s.maps, s.err
}

func (s *stubGameDataService) LatestBundles(context.Context) (*gamedatasvc.BundleShowcase, error) {
	return s.bundles, s.err
}

func (s *stubGameDataService) RandomSkin(context.Context) (*gamedatasvc.SkinView, error) {
	return s.skin, s.err
}

func TestGameDataActiveAct(t *testing.T) {
	svc := &stubGameDataService{
		act: &gamedatasvc.ActView{
			UUID:      "act-3",
			Name:      "Act III",
			StartTime: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC),
		},
	}
	handler := GameDataActiveAct(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/gamedata/act", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data gamedatasvc.ActView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Name != "Act III" {
		t.Fatalf("unexpected act: %+v", envelope.Data)
	}
}

func TestGameDataMaps(t *testing.T) {
	svc := &stubGameDataService{
		maps: []gamedatasvc.MapView{
			{UUID: "m1", Name: "Ascent"},
			{UUID: "m2", Name: "Bind"},
		},
	}
	handler := GameDataMaps(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/gamedata/maps", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []gamedatasvc.MapView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 || envelope.Data[0].Name != "Ascent" {
		t.Fatalf("unexpected maps: %+v", envelope.Data)
	}
}

func TestGameDataRandomSkinUpstreamDown(t *testing.T) {
	svc := &stubGameDataService{err: pkgerrors.New(pkgerrors.CodeDependency, "upstream unavailable")}
	handler := GameDataRandomSkin(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/gamedata/skins/random", nil))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestGameDataBundles(t *testing.T) {
	svc := &stubGameDataService{
		bundles: &gamedatasvc.BundleShowcase{
			Featured: &gamedatasvc.BundleView{UUID: "b1", Name: "Newest"},
			Gallery:  []gamedatasvc.BundleView{{UUID: "b2", Name: "Older"}},
		},
	}
	handler := GameDataBundles(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/gamedata/bundles", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data gamedatasvc.BundleShowcase `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Featured == nil || envelope.Data.Featured.Name != "Newest" {
		t.Fatalf("unexpected showcase: %+v", envelope.Data)
	}
}
