package server

import (
	"net/http"

	"assetbot/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.Health)

	r.Group(func(bot chi.Router) {
		bot.Use(s.Middleware.BotAuthMiddleware())
		bot.Post("/chat", s.ChatHandler.Chat)
	})

	return r
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"assets":     len(s.Snapshot.Assets),
		"carriers":   len(s.Snapshot.Carriers),
		"categories": len(s.Snapshot.Categories),
		"models":     len(s.Snapshot.Models),
	})
}
