package controllers

import (
	"net/http"

	"github.com/ramosvitor/tibiaset-backend/api/responses"
	"github.com/ramosvitor/tibiaset-backend/pkg/config"
)

// HealthLive reports process liveness only; it never touches dependencies.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env := ""
		if cfg != nil {
			env = cfg.App.Env
		}
		responses.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"env":    env,
		})
	}
}
