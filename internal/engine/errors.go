package engine

import "errors"

var (
	ErrNotStarted     = errors.New("game not started")
	ErrAlreadyStarted = errors.New("game already started")
	ErrGameOver       = errors.New("game over")
	ErrBadLayout      = errors.New("invalid layout")
	ErrNoPiece        = errors.New("no piece on tile")
	ErrNotYourPiece   = errors.New("piece belongs to the other side")
	ErrNoSelection    = errors.New("no piece selected")
	ErrIllegalMove    = errors.New("illegal move")
)
