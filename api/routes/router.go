package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ramosvitor/tibiaset-backend/api/controllers"
	"github.com/ramosvitor/tibiaset-backend/api/middleware"
	"github.com/ramosvitor/tibiaset-backend/internal/accounts"
	buildsvc "github.com/ramosvitor/tibiaset-backend/internal/builds"
	catalogsvc "github.com/ramosvitor/tibiaset-backend/internal/catalog"
	"github.com/ramosvitor/tibiaset-backend/pkg/config"
	"github.com/ramosvitor/tibiaset-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	catalogService catalogsvc.Service,
	accountService accounts.Service,
	buildService buildsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(!cfg.App.IsProd()),
	)

	r.Get("/health", controllers.HealthLive(cfg))

	r.Get("/items", controllers.ListItems(catalogService, logg))
	r.Get("/monsters", controllers.ListMonsters(catalogService, logg))
	r.Get("/gems", controllers.ListGems(catalogService, logg))
	r.Get("/imbuements", controllers.ListImbuements(catalogService, logg))

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", controllers.UserRegister(accountService, logg))
		r.Post("/login", controllers.UserLogin(accountService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, accountService, logg))
			r.Get("/me", controllers.UserMe(logg))
			r.Patch("/me", controllers.UserUpdate(accountService, logg))
			r.Delete("/me", controllers.UserDelete(accountService, logg))
		})
	})

	r.Route("/builds", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, accountService, logg))
		r.Post("/", controllers.BuildCreate(buildService, logg))
		r.Get("/", controllers.BuildList(buildService, logg))
		r.Get("/{buildId}", controllers.BuildGet(buildService, logg))
		r.Delete("/{buildId}", controllers.BuildDelete(buildService, logg))
	})

	return r
}
