package httpserver

import (
	"io"
	"net/http"
	"os"

	"github.com/gorilla/handlers"

	"chessrules/internal/server/game"
)

type Config struct {
	WebDir      string    // optional static assets served under /web/
	AccessLog   io.Writer // nil means stdout
	CORSOrigins []string  // empty disables CORS headers
}

// Server is the full HTTP stack: API and websocket routes, static assets,
// access logging and panic recovery.
type Server struct {
	h http.Handler
}

func NewServer(games *game.Manager, cfg Config) *Server {
	api := NewHandler(games)
	RegisterStaticRoutes(api.router, cfg.WebDir)

	var h http.Handler = api
	if len(cfg.CORSOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(cfg.CORSOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(h)
	}
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)

	logOut := cfg.AccessLog
	if logOut == nil {
		logOut = os.Stdout
	}
	return &Server{h: handlers.LoggingHandler(logOut, h)}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.h.ServeHTTP(w, r)
}
