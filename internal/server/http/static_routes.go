package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const viewCookieName = "chess_view"

const usage = `chess server

POST   /api/new_game              {"fen": "..."} optional
POST   /api/play                  {"game_id": "...", "move": {"from": "e2", "to": "e4"}}
POST   /api/state                 {"game_id": "..."}
POST   /api/ai_move               {"game_id": "..."}
POST   /api/load                  body: a saved game
DELETE /api/games/{id}
GET    /api/games/{id}/board.svg  ?moves=e2 highlights a piece's moves
GET    /api/games/{id}/board.txt  ?color=1 for ANSI colors
GET    /api/games/{id}/save
GET    /ws/{id}                   live state; send {"from": "e2", "to": "e4"} to move
`

// RegisterStaticRoutes mounts:
// - /web/* -> browser assets from webDir, when set
// - /      -> usage text for terminal clients, the web UI for browsers
func RegisterStaticRoutes(r *mux.Router, webDir string) {
	if r == nil {
		return
	}
	if webDir != "" {
		r.PathPrefix("/web/").Handler(http.StripPrefix("/web/", http.FileServer(http.Dir(webDir))))
	}

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if webDir == "" || pickView(w, r) == "text" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			fmt.Fprint(w, usage)
			return
		}
		w.Header().Set("Vary", "User-Agent, Cookie")
		http.Redirect(w, r, "/web/", http.StatusFound)
	})
}

func pickView(w http.ResponseWriter, r *http.Request) string {
	if v, ok := normalizeView(r.URL.Query().Get("view")); ok {
		rememberView(w, v)
		return v
	}

	if c, err := r.Cookie(viewCookieName); err == nil {
		if v, ok := normalizeView(c.Value); ok {
			return v
		}
	}

	if isTerminalUA(r.UserAgent()) {
		return "text"
	}
	return "web"
}

func rememberView(w http.ResponseWriter, view string) {
	http.SetCookie(w, &http.Cookie{
		Name:     viewCookieName,
		Value:    view,
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})
}

func normalizeView(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "web", "html", "browser":
		return "web", true
	case "text", "txt", "plain", "terminal":
		return "text", true
	default:
		return "", false
	}
}

func isTerminalUA(ua string) bool {
	s := strings.ToLower(ua)
	if s == "" {
		return true
	}
	for _, n := range []string{"curl", "wget", "httpie", "go-http-client"} {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
