package controllers

import (
	"net/http"

	"github.com/ramosvitor/tibiaset-backend/api/middleware"
	"github.com/ramosvitor/tibiaset-backend/api/responses"
	"github.com/ramosvitor/tibiaset-backend/api/validators"
	"github.com/ramosvitor/tibiaset-backend/internal/accounts"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
	"github.com/ramosvitor/tibiaset-backend/pkg/logger"
	"github.com/ramosvitor/tibiaset-backend/pkg/types"
)

// UserRegister handles POST /users/register.
func UserRegister(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		var payload accounts.RegisterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Register(r.Context(), payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, types.Ack{Msg: "user registered successfully"})
	}
}

// loginForm is the form-encoded password grant, with the email carried in
// the username field the way OAuth2 password flows post it.
type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// UserLogin handles POST /users/login.
func UserLogin(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		if err := r.ParseForm(); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body"))
			return
		}

		form := loginForm{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}
		if err := validators.ValidateStruct(form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		grant, err := svc.Login(r.Context(), form.Username, form.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, grant)
	}
}

// UserMe handles GET /users/me.
func UserMe(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "could not validate credentials"))
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]accounts.Identity{"user": identity})
	}
}

// UserUpdate handles PATCH /users/me.
func UserUpdate(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "could not validate credentials"))
			return
		}

		var payload accounts.UpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateSelf(r.Context(), identity, payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, types.Ack{Msg: "user updated successfully"})
	}
}

// UserDelete handles DELETE /users/me.
func UserDelete(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "could not validate credentials"))
			return
		}

		if err := svc.DeleteSelf(r.Context(), identity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, types.Ack{Msg: "user deleted successfully"})
	}
}
