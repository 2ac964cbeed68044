package controllers

import (
	"net/http"

	"github.com/jdrosales/playmerch-backend/api/responses"
	gamedatasvc "github.com/jdrosales/playmerch-backend/internal/gamedata"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
	"github.com/jdrosales/playmerch-backend/pkg/logger"
)

// GameDataActiveAct returns the currently running act with its countdown
// targets.
func GameDataActiveAct(svc gamedatasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gamedata service unavailable"))
			return
		}

		act, err := svc.ActiveAct(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, act)
	}
}

// GameDataMaps returns the configured map rotation.
func GameDataMaps(svc gamedatasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gamedata service unavailable"))
			return
		}

		maps, err := svc.CurrentMaps(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, maps)
	}
}

// GameDataBundles returns the featured bundle and the gallery behind it.
func GameDataBundles(svc gamedatasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gamedata service unavailable"))
			return
		}

		bundles, err := svc.LatestBundles(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, bundles)
	}
}

// GameDataRandomSkin returns one displayable skin picked at random.
func GameDataRandomSkin(svc gamedatasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gamedata service unavailable"))
			return
		}

		skin, err := svc.RandomSkin(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, skin)
	}
}
