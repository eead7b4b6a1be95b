package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ramosvitor/tibiaset-backend/api/middleware"
	"github.com/ramosvitor/tibiaset-backend/api/responses"
	"github.com/ramosvitor/tibiaset-backend/api/validators"
	buildsvc "github.com/ramosvitor/tibiaset-backend/internal/builds"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
	"github.com/ramosvitor/tibiaset-backend/pkg/logger"
	"github.com/ramosvitor/tibiaset-backend/pkg/types"
)

// BuildCreate handles POST /builds/.
func BuildCreate(svc buildsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "build service unavailable"))
			return
		}

		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "could not validate credentials"))
			return
		}

		var payload buildsvc.CreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		buildID, err := svc.Create(r.Context(), identity, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, types.CreatedAck{Msg: "build saved successfully", ID: buildID})
	}
}

// BuildList handles GET /builds/.
func BuildList(svc buildsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "build service unavailable"))
			return
		}

		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "could not validate credentials"))
			return
		}

		builds, err := svc.ListMine(r.Context(), identity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, builds)
	}
}

// BuildGet handles GET /builds/{buildId}.
func BuildGet(svc buildsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "build service unavailable"))
			return
		}

		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "could not validate credentials"))
			return
		}

		buildID := chi.URLParam(r, "buildId")
		if buildID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "missing build id"))
			return
		}

		build, err := svc.Get(r.Context(), identity, buildID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, build)
	}
}

// BuildDelete handles DELETE /builds/{buildId}.
func BuildDelete(svc buildsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "build service unavailable"))
			return
		}

		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "could not validate credentials"))
			return
		}

		buildID := chi.URLParam(r, "buildId")
		if buildID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "missing build id"))
			return
		}

		if err := svc.Delete(r.Context(), identity, buildID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, types.Ack{Msg: "build deleted successfully"})
	}
}
