package httpserver

import (
	"fmt"
	"strings"

	"chessrules/internal/chess"
	"chessrules/internal/engine"
	"chessrules/internal/server/game"
)

// MoveDTO names squares in file/rank form, e.g. "e2".
type MoveDTO struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"` // queen, rook, bishop or knight
}

func (m MoveDTO) decode() (from, to chess.Location, promo chess.Kind, err error) {
	if from, err = chess.ParseSquare(strings.ToLower(m.From)); err != nil {
		return
	}
	if to, err = chess.ParseSquare(strings.ToLower(m.To)); err != nil {
		return
	}
	promo = chess.KindNone
	if m.Promotion != "" {
		k, ok := chess.ParseKind(strings.ToLower(m.Promotion))
		if !ok {
			err = fmt.Errorf("%w: %q", chess.ErrInvalidPromotion, m.Promotion)
			return
		}
		promo = k
	}
	return
}

func moveToDTO(m chess.Move) MoveDTO {
	return MoveDTO{From: m.From.String(), To: m.To.String()}
}

func movesToDTO(ms []chess.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

type NewGameRequest struct {
	FEN string `json:"fen,omitempty"` // empty for the standard start
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type AiMoveRequest struct {
	GameID string `json:"game_id"`
}

// StateResponse is returned by every endpoint that changes or reads a game,
// and pushed to websocket subscribers.
type StateResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"` // FEN
	Board      string    `json:"board"`
	ToMove     string    `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`
	Hash       string    `json:"hash"`
	Plies      int       `json:"plies"`
}

type AiMoveResponse struct {
	StateResponse
	BestMove   MoveDTO `json:"best_move"`
	Candidates int     `json:"candidates"`
	Cached     bool    `json:"cached"`
	TimeMs     int64   `json:"time_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func stateResponse(s game.Snapshot) StateResponse {
	return StateResponse{
		GameID:     s.ID,
		Position:   s.FEN,
		Board:      s.Board,
		ToMove:     s.ToMove.String(),
		LegalMoves: movesToDTO(s.LegalMoves),
		Status:     s.Status.String(),
		Hash:       fmt.Sprintf("%016x", s.Hash),
		Plies:      s.Plies,
	}
}

func aiMoveResponse(s game.Snapshot, res engine.SearchResult) AiMoveResponse {
	best := moveToDTO(res.Move)
	if res.Promotion != chess.KindNone {
		best.Promotion = res.Promotion.String()
	}
	return AiMoveResponse{
		StateResponse: stateResponse(s),
		BestMove:      best,
		Candidates:    res.Candidates,
		Cached:        res.Cached,
		TimeMs:        res.TimeUsed.Milliseconds(),
	}
}
