package api

import (
	"net/http"
	"time"

	handlers "assettracker/src/api/handlers"
	"assettracker/src/config"
	"assettracker/src/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	Router  *chi.Mux
	Handler handlers.Handler
}

func NewServer(cfg *config.Config) (*Server, error) {
	handler, err := handlers.NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithHandler(handler, cfg.CORS.AllowedOrigins), nil
}

// NewServerWithHandler wires the router around an already-built handler.
// Tests use it to mount mock controllers behind the real routes.
func NewServerWithHandler(handler *handlers.Handler, allowedOrigins []string) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: *handler,
	}
	server.Router.Use(chimiddleware.StripSlashes)
	server.Router.Use(middleware.RequestLogging(handler.Logger))
	server.Router.Use(middleware.Recovery(handler.Logger))
	server.Router.Use(middleware.CORS(allowedOrigins))
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.NotFound(s.Handler.NotFound)
	s.Router.MethodNotAllowed(s.Handler.MethodNotAllowed)

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/assets", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllAssets)
		r.Post("/", s.Handler.CreateAsset)
		r.Get("/file", s.Handler.GetAssetsFile)
		r.Put("/", s.Handler.AssetIDRequired)
		r.Patch("/", s.Handler.AssetIDRequired)
		r.Delete("/", s.Handler.AssetIDRequired)
		r.Get("/{id:[0-9]+}", s.Handler.GetAssetByID)
		r.Put("/{id:[0-9]+}", s.Handler.UpdateAsset)
		r.Patch("/{id:[0-9]+}", s.Handler.PatchAsset)
		r.Delete("/{id:[0-9]+}", s.Handler.DeleteAsset)
		r.Patch("/{id:[0-9]+}/department", s.Handler.PatchAssetDepartment)
	})

	s.Router.Route("/api/categories", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllCategories)
		r.Post("/", s.Handler.CreateCategory)
		r.Put("/", s.Handler.CategoryIDRequired)
		r.Patch("/", s.Handler.CategoryIDRequired)
		r.Delete("/", s.Handler.CategoryIDRequired)
		r.Get("/{id:[0-9]+}", s.Handler.GetCategoryByID)
		r.Put("/{id:[0-9]+}", s.Handler.UpdateCategory)
		r.Patch("/{id:[0-9]+}", s.Handler.PatchCategory)
		r.Delete("/{id:[0-9]+}", s.Handler.DeleteCategory)
	})

	s.Router.Route("/api/departments", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllDepartments)
		r.Post("/", s.Handler.CreateDepartment)
		r.Put("/", s.Handler.DepartmentIDRequired)
		r.Patch("/", s.Handler.DepartmentIDRequired)
		r.Delete("/", s.Handler.DepartmentIDRequired)
		r.Get("/{id:[0-9]+}", s.Handler.GetDepartmentByID)
		r.Put("/{id:[0-9]+}", s.Handler.UpdateDepartment)
		r.Patch("/{id:[0-9]+}", s.Handler.PatchDepartment)
		r.Delete("/{id:[0-9]+}", s.Handler.DeleteDepartment)
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	port := cfg.Service.Port
	if port == "" {
		port = "8000"
	}
	httpServer := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
