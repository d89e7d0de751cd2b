package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"chessrules/internal/engine"
	"chessrules/internal/server/game"
	httpserver "chessrules/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start()
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt64(key string, def int64) int64 {
	v, err := strconv.ParseInt(envOr(key, ""), 10, 64)
	if err != nil {
		return def
	}
	return v
}

func main() {
	addr := flag.String("addr", envOr("CHESS_ADDR", ":2888"), "listen address (CHESS_ADDR)")
	webDir := flag.String("web", envOr("CHESS_WEB", ""), "optional directory served under /web/ (CHESS_WEB)")
	seed := flag.Int64("seed", envInt64("CHESS_SEED", 0), "engine seed, 0 for time-based (CHESS_SEED)")
	origins := flag.String("cors", envOr("CHESS_CORS", ""), "comma separated CORS origins (CHESS_CORS)")
	open := flag.Bool("open", false, "open the default browser once listening")
	debug := flag.Bool("debug", os.Getenv("CHESS_DEBUG") != "", "debug logging (CHESS_DEBUG)")
	flag.Parse()

	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var opts []engine.Option
	if *seed != 0 {
		opts = append(opts, engine.WithSeed(*seed))
	}
	games := game.NewManager(engine.NewEngine(opts...))

	cfg := httpserver.Config{WebDir: *webDir}
	if *origins != "" {
		cfg.CORSOrigins = strings.Split(*origins, ",")
	}
	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpserver.NewServer(games, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", *addr)

	if *open {
		go func() {
			time.Sleep(100 * time.Millisecond)
			host := *addr
			if strings.HasPrefix(host, ":") {
				host = "127.0.0.1" + host
			}
			openBrowser("http://" + host)
		}()
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
