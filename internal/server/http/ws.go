package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// handleWS streams the game's state to the client: once on connect, then after
// every move. Text frames holding a MoveDTO are played for the side to move;
// a rejected move is answered with an ErrorResponse.
func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s, err := h.games.Get(id)
	if err != nil {
		writeErr(w, err)
		return
	}
	updates, cancel, err := h.games.Subscribe(id)
	if err != nil {
		writeErr(w, err)
		return
	}
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "id", id, "err", err)
		return
	}
	defer conn.Close()
	log.Info("websocket connected", "id", id, "remote", conn.RemoteAddr().String())

	replies := make(chan ErrorResponse, 4)
	done := make(chan struct{})
	go h.readMoves(conn, id, replies, done)

	if err := conn.WriteJSON(stateResponse(s.Snapshot())); err != nil {
		return
	}
	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game deleted"))
				return
			}
			if err := conn.WriteJSON(stateResponse(snap)); err != nil {
				return
			}
		case msg := <-replies:
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// readMoves is the connection's only reader.
func (h *Handler) readMoves(conn *websocket.Conn, id string, replies chan<- ErrorResponse, done chan<- struct{}) {
	defer close(done)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read failed", "id", id, "err", err)
			}
			return
		}
		var m MoveDTO
		if err := json.Unmarshal(data, &m); err != nil {
			h.reply(replies, ErrorResponse{Error: "bad json"})
			continue
		}
		if _, err := h.play(id, m); err != nil {
			h.reply(replies, ErrorResponse{Error: err.Error()})
		}
	}
}

func (h *Handler) reply(replies chan<- ErrorResponse, msg ErrorResponse) {
	select {
	case replies <- msg:
	default:
		log.Warn("websocket reply dropped", "err", msg.Error)
	}
}
