package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json"))

	router.Get("/api/version", h.getAppVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	// static catalog and assistant do not touch the profile store
	router.Group(func(r chi.Router) {
		r.Get("/api/recipes", h.listRecipes)
		r.Get("/api/recipes/{recipeID}", h.getRecipe)

		r.Post("/api/assistant/recipe", h.generateRecipe)
		r.Post("/api/assistant/chat", h.chat)
	})

	// routes reading or writing user state wait for the store to load
	router.Group(func(r chi.Router) {
		r.Use(h.withReady)

		r.Get("/api/state", h.getState)

		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.updateProfile)

		r.Get("/api/favorites", h.getFavorites)
		r.Get("/api/favorites/{recipeID}", h.isFavorite)
		r.Post("/api/favorites/{recipeID}/toggle", h.toggleFavorite)
		r.Get("/api/recipes/favorites", h.favoriteRecipes)

		r.Get("/api/history", h.getHistory)
		r.Post("/api/history", h.addToHistory)
		r.Delete("/api/history", h.clearHistory)

		r.Get("/api/stats", h.getStats)

		r.Post("/api/quiz/sessions", h.startQuiz)
		r.Get("/api/quiz/sessions/{sessionID}", h.getQuizStep)
		r.Post("/api/quiz/sessions/{sessionID}/answer", h.answerQuiz)
		r.Post("/api/quiz/sessions/{sessionID}/continue", h.continueQuiz)
		r.Post("/api/quiz/sessions/{sessionID}/text", h.submitQuizText)

		r.Get("/api/subscription", h.getSubscription)
		r.Get("/api/subscription/plans", h.getPlans)
		r.Post("/api/subscription/purchase", h.purchase)
		r.Post("/api/subscription/restore", h.restore)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound, "*Handler.notFound")
}
