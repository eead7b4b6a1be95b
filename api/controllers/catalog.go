package controllers

import (
	"net/http"

	"github.com/ramosvitor/tibiaset-backend/api/responses"
	"github.com/ramosvitor/tibiaset-backend/api/validators"
	catalogsvc "github.com/ramosvitor/tibiaset-backend/internal/catalog"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
	"github.com/ramosvitor/tibiaset-backend/pkg/logger"
)

// ListItems serves GET /items with optional slot, vocation, and min_level filters.
func ListItems(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		slot, err := validators.IntQuery(r, "slot")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		minLevel, err := validators.IntQuery(r, "min_level")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.ListItems(r.Context(), catalogsvc.ItemFilters{
			Slot:     slot,
			Vocation: validators.StringQuery(r, "vocation"),
			MinLevel: minLevel,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, items)
	}
}

// ListMonsters serves GET /monsters with optional name, weakness, and min_level filters.
func ListMonsters(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		minLevel, err := validators.IntQuery(r, "min_level")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		monsters, err := svc.ListMonsters(r.Context(), catalogsvc.MonsterFilters{
			Name:     validators.StringQuery(r, "name"),
			Weakness: validators.StringQuery(r, "weakness"),
			MinLevel: minLevel,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, monsters)
	}
}

// ListGems serves GET /gems with optional minimum bonus thresholds.
func ListGems(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var f catalogsvc.GemFilters
		var err error
		if f.MinBonusAttack, err = validators.IntQuery(r, "min_bonus_attack"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if f.MinBonusDefense, err = validators.IntQuery(r, "min_bonus_defense"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if f.MinBonusMagic, err = validators.IntQuery(r, "min_bonus_magic"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		gems, err := svc.ListGems(r.Context(), f)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, gems)
	}
}

// ListImbuements serves GET /imbuements with optional slot and bonus filters.
func ListImbuements(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		f := catalogsvc.ImbuementFilters{
			ApplicableSlot: validators.StringQuery(r, "applicable_slot"),
		}
		var err error
		if f.MinBonusAttack, err = validators.IntQuery(r, "min_bonus_attack"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if f.MinBonusDefense, err = validators.IntQuery(r, "min_bonus_defense"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if f.MinBonusMagic, err = validators.IntQuery(r, "min_bonus_magic"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		imbuements, err := svc.ListImbuements(r.Context(), f)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, imbuements)
	}
}
