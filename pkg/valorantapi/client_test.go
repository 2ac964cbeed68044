package valorantapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
)

func TestSeasonsDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/seasons" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": 200,
			"data": [
				{"uuid": "s1", "displayName": "EPISODE 1", "type": null},
				{"uuid": "a1", "displayName": "ACT I", "title": "EPISODE 1 // ACT I",
				 "type": "EAresSeasonType::Act",
				 "startTime": "2024-01-10T00:00:00Z", "endTime": "2024-03-05T00:00:00Z",
				 "parentUuid": "s1"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	seasons, err := client.Seasons(context.Background())
	if err != nil {
		t.Fatalf("Seasons returned error: %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("expected 2 seasons, got %d", len(seasons))
	}
	if seasons[1].Type != "EAresSeasonType::Act" {
		t.Fatalf("expected act type, got %q", seasons[1].Type)
	}
	if seasons[1].StartTime == nil || seasons[1].EndTime == nil {
		t.Fatalf("expected act timestamps to be parsed")
	}
	if seasons[1].Title != "EPISODE 1 // ACT I" {
		t.Fatalf("expected season title, got %q", seasons[1].Title)
	}
	if seasons[1].ParentUUID != "s1" {
		t.Fatalf("expected parent uuid s1, got %q", seasons[1].ParentUUID)
	}
}

func TestWeaponSkinsDecodesChromas(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/weapons/skins" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"status": 200,
			"data": [
				{"uuid": "w1", "displayName": "Reaver Vandal", "displayIcon": "",
				 "chromas": [{"uuid": "c1", "displayName": "Reaver Vandal", "fullRender": "https://img/c1.png"}]}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	skins, err := client.WeaponSkins(context.Background())
	if err != nil {
		t.Fatalf("WeaponSkins returned error: %v", err)
	}
	if len(skins) != 1 {
		t.Fatalf("expected 1 skin, got %d", len(skins))
	}
	if len(skins[0].Chromas) != 1 || skins[0].Chromas[0].FullRender != "https://img/c1.png" {
		t.Fatalf("expected chroma full render to be decoded, got %+v", skins[0].Chromas)
	}
}

func TestGetMapsDependencyErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Maps(context.Background())
	if err == nil {
		t.Fatalf("expected error for non-200 response")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %T", err)
	}
	if typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency code, got %s", typed.Code())
	}
}

func TestGetBundlesRejectsEnvelopeStatusMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": 404, "data": null}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	if _, err := client.Bundles(context.Background()); err == nil {
		t.Fatalf("expected error for envelope status mismatch")
	}
}
