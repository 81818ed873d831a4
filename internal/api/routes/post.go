package routes

import (
	"Scribe/internal/api/handlers/post"
	"Scribe/internal/api/middleware"
	"Scribe/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the post endpoints on the router.
// Every post endpoint requires authentication.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := post.NewCreateHandler(service)
	listHandler := post.NewListHandler(service)
	updateHandler := post.NewUpdateHandler(service)

	r.Route("/posts", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Post("/", createHandler.HandleCreate)
		r.Get("/", listHandler.HandleList)
		r.Patch("/{postId}", updateHandler.HandleUpdate)
	})
}
