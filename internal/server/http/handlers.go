package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"chessrules/internal/chess"
	"chessrules/internal/render"
	"chessrules/internal/server/game"
)

var log = slog.Default().With("package", "httpserver")

// Handler serves /api/* and /ws/* for the games held by a Manager.
type Handler struct {
	games    *game.Manager
	router   *mux.Router
	upgrader websocket.Upgrader
}

func NewHandler(games *game.Manager) *Handler {
	h := &Handler{
		games:  games,
		router: mux.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	h.routes(h.router)
	return h
}

func (h *Handler) routes(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/new_game", h.handleNewGame).Methods(http.MethodPost)
	api.HandleFunc("/play", h.handlePlay).Methods(http.MethodPost)
	api.HandleFunc("/state", h.handleState).Methods(http.MethodPost)
	api.HandleFunc("/ai_move", h.handleAiMove).Methods(http.MethodPost)
	api.HandleFunc("/load", h.handleLoad).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", h.handleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/board.svg", h.handleBoardSVG).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/board.txt", h.handleBoardText).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/save", h.handleSave).Methods(http.MethodGet)
	r.HandleFunc("/ws/{id}", h.handleWS).Methods(http.MethodGet)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// An empty body asks for the standard start.
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
	}

	var (
		s   *game.GameState
		err error
	)
	if req.FEN == "" {
		s = h.games.NewGame()
	} else if s, err = h.games.NewGameFromFEN(req.FEN); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, stateResponse(s.Snapshot()))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	snap, err := h.play(req.GameID, req.Move)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, stateResponse(snap))
}

func (h *Handler) play(id string, m MoveDTO) (game.Snapshot, error) {
	from, to, promo, err := m.decode()
	if err != nil {
		return game.Snapshot{}, err
	}
	return h.games.Play(id, from, to, promo)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, stateResponse(s.Snapshot()))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	snap, res, err := h.games.AIMove(req.GameID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, aiMoveResponse(snap, res))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.games.Delete(mux.Vars(r)["id"]); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBoardSVG draws the board; ?moves=e2 highlights that piece's moves.
func (h *Handler) handleBoardSVG(w http.ResponseWriter, r *http.Request) {
	s, err := h.games.Get(mux.Vars(r)["id"])
	if err != nil {
		writeErr(w, err)
		return
	}
	var from *chess.Location
	if sq := r.URL.Query().Get("moves"); sq != "" {
		l, err := chess.ParseSquare(sq)
		if err != nil {
			writeErr(w, err)
			return
		}
		from = &l
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_ = s.With(func(g *chess.Game) error {
		var marks []chess.Location
		if from != nil {
			if p := g.PieceAt(*from); p != nil {
				marks = g.ValidMoves(p)
			}
		}
		render.SVG(w, g.Board(), 0, marks...)
		return nil
	})
}

// handleBoardText is the terminal view; ?color=1 adds ANSI tile colors.
func (h *Handler) handleBoardText(w http.ResponseWriter, r *http.Request) {
	s, err := h.games.Get(mux.Vars(r)["id"])
	if err != nil {
		writeErr(w, err)
		return
	}
	var opts []render.TextOption
	if r.URL.Query().Get("color") == "1" {
		opts = append(opts, render.WithColor())
	}
	var out string
	_ = s.With(func(g *chess.Game) error {
		out = render.Text(g.Board(), opts...)
		return nil
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.games.Get(id); err != nil {
		writeErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+id+`.json"`)
	if err := h.games.Save(id, w); err != nil {
		log.Error("save failed", "id", id, "err", err)
	}
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	s, err := h.games.Load(r.Body)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, stateResponse(s.Snapshot()))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("writeJSON failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

// writeErr maps domain errors to status codes.
func writeErr(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, chess.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, chess.ErrIllegalMove),
		errors.Is(err, chess.ErrNotYourTurn),
		errors.Is(err, chess.ErrNoPiece),
		errors.Is(err, chess.ErrInvalidPromotion),
		errors.Is(err, chess.ErrInvalidLocation),
		errors.Is(err, chess.ErrInvalidFEN),
		errors.Is(err, chess.ErrInvalidSave):
		return http.StatusBadRequest
	}
	log.Error("unexpected error", "err", err)
	return http.StatusInternalServerError
}
