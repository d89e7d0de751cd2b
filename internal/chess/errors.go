package chess

import "errors"

var (
	ErrInvalidFEN       = errors.New("invalid FEN")
	ErrInvalidLocation  = errors.New("invalid location")
	ErrNoPiece          = errors.New("no piece at source square")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrIllegalMove      = errors.New("illegal move")
	ErrGameOver         = errors.New("game is over")
	ErrInvalidPromotion = errors.New("invalid promotion")
	ErrInvalidSave      = errors.New("invalid save")
	ErrOccupied         = errors.New("square already occupied")
	ErrInvalidPiece     = errors.New("invalid piece")
)
