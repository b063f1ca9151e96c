package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "mergington/docs"
	"mergington/internal/delivery/http/controllers"
	"mergington/internal/delivery/http/middleware"
)

// LandingPage is where GET / redirects. The static assets themselves are served elsewhere.
const LandingPage = "/static/index.html"

// RouterDeps bundles what NewRouter wires into the mux.
type RouterDeps struct {
	Logger             *slog.Logger
	Activities         *controllers.ActivityController
	Metrics            middleware.RequestObserver
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and middleware.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /activities", deps.Activities.ListActivities)
	mux.HandleFunc("POST /activities", deps.Activities.CreateActivity)
	mux.HandleFunc("POST /activities/{activity_name}/signup", deps.Activities.Signup)

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, LandingPage, http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("GET /healthz", controllers.Health)
	if deps.MetricsHandler != nil {
		mux.Handle("GET /metrics", deps.MetricsHandler)
	}

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	if deps.Metrics != nil {
		handler = middleware.Metrics(deps.Metrics, handler)
	}
	handler = middleware.LoggingMiddleware(deps.Logger, handler)
	handler = middleware.RequestID(handler)
	return middleware.CORS(deps.CORSAllowedOrigins, handler)
}
