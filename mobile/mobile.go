// Package mobile exposes the game server through a gomobile-friendly API:
// string arguments only, no return values that need binding.
package mobile

import (
	"log"
	"net/http"

	"chessrules/internal/engine"
	"chessrules/internal/server/game"
	httpserver "chessrules/internal/server/http"
)

// StartServer starts the local HTTP server on 127.0.0.1.
// webDir: physical path to the extracted web assets, may be empty
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	games := game.NewManager(engine.NewEngine())
	h := httpserver.NewServer(games, httpserver.Config{WebDir: webDir})

	// Run in background so it doesn't block the UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, h); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
