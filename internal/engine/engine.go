// Package engine runs one game session: it owns the board and the turn
// controller and moves the session through Setup, InProgress and GameOver.
package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/gbs0/chezz-univoid-game/internal/board"
	"github.com/google/uuid"
)

// State is the phase of a game session.
type State uint8

const (
	Setup State = iota
	InProgress
	GameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Setup:
		return "setup"
	case InProgress:
		return "inprogress"
	case GameOver:
		return "gameover"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Summary describes a finished game.
type Summary struct {
	ID        string
	Size      int
	Winner    board.Color
	HalfMoves int
	Duration  time.Duration
}

// Engine is a single game session. It is not safe for concurrent use.
type Engine struct {
	id      string
	state   State
	board   *board.Board
	turns   *TurnController
	legal   board.MoveList // destinations for the current selection
	moves   int
	started time.Time
	logger  *log.Logger

	// Callbacks
	OnGameOver func(Summary)
}

// NewEngine creates an engine in the Setup state.
func NewEngine() *Engine {
	return &Engine{logger: log.Default()}
}

// SetLogger replaces the logger used for session events. nil restores
// the standard logger.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	e.logger = l
}

// Start creates a board of the given size (clamped) with the initial
// layout. White moves first.
func (e *Engine) Start(size int) error {
	if e.state != Setup {
		return ErrAlreadyStarted
	}
	e.begin(board.New(size), board.White)
	return nil
}

// StartFromLayout creates a board from a layout string with toMove to play.
func (e *Engine) StartFromLayout(layout string, toMove board.Color) error {
	if e.state != Setup {
		return ErrAlreadyStarted
	}
	b, err := board.ParseLayout(layout)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadLayout, err)
	}
	e.begin(b, toMove)
	return nil
}

func (e *Engine) begin(b *board.Board, toMove board.Color) {
	e.id = uuid.NewString()
	e.board = b
	e.turns = &TurnController{current: toMove}
	e.legal = nil
	e.moves = 0
	e.started = time.Now()
	e.state = InProgress
	e.logger.Printf("[GAME %s] started %dx%d, %s to move", e.id, b.Size(), b.Size(), toMove)
}

// Reset discards the board and returns to Setup. Valid in every state.
func (e *Engine) Reset() {
	if e.state != Setup {
		e.logger.Printf("[GAME %s] reset in state %s after %d half-moves", e.id, e.state, e.moves)
	}
	*e = Engine{logger: e.logger, OnGameOver: e.OnGameOver}
}

// Select picks the piece on (x, y) for the side to move and returns its
// legal destinations. On error nothing changes, including any earlier
// selection.
func (e *Engine) Select(x, y int) (board.MoveList, error) {
	if err := e.checkPlaying(); err != nil {
		return nil, err
	}

	sq := board.NewSquare(x, y)
	p, ok := e.board.PieceAt(sq)
	if !ok {
		return nil, ErrNoPiece
	}
	if !e.turns.SelectPiece(p, x, y) {
		return nil, ErrNotYourPiece
	}

	e.legal = board.GenerateMoves(e.board.Snapshot(), sq, e.board.Size())
	return e.legal, nil
}

// Deselect clears the selection.
func (e *Engine) Deselect() {
	if e.turns != nil {
		e.turns.DeselectPiece()
	}
	e.legal = nil
}

// LegalMoves returns the destinations of the selected piece.
func (e *Engine) LegalMoves() (board.MoveList, bool) {
	if _, ok := e.Selection(); !ok {
		return nil, false
	}
	return e.legal, true
}

// Move sends the selected piece to (x, y). The destination must be one of
// the moves returned by Select. A quiet move or ordinary capture passes the
// turn; capturing the priest ends the game.
func (e *Engine) Move(x, y int) (board.GameResult, error) {
	if err := e.checkPlaying(); err != nil {
		return board.GameResult{}, err
	}

	sel, ok := e.turns.Selection()
	if !ok {
		return board.GameResult{}, ErrNoSelection
	}
	to := board.NewSquare(x, y)
	if !e.legal.Contains(to) {
		return board.GameResult{}, ErrIllegalMove
	}

	res := e.board.MovePiece(sel.Square.X, sel.Square.Y, to.X, to.Y)
	e.moves++
	e.legal = nil

	if !res.IsGameOver {
		e.turns.EndTurn()
		return res, nil
	}

	e.turns.DeselectPiece()
	e.state = GameOver
	winner, _ := res.Winner()
	summary := Summary{
		ID:        e.id,
		Size:      e.board.Size(),
		Winner:    winner,
		HalfMoves: e.moves,
		Duration:  time.Since(e.started),
	}
	e.logger.Printf("[GAME %s] %s wins after %d half-moves", e.id, winner, e.moves)
	if e.OnGameOver != nil {
		e.OnGameOver(summary)
	}
	return res, nil
}

// Play selects the piece on (fromX, fromY) and moves it to (toX, toY).
// If the move is refused the selection is cleared.
func (e *Engine) Play(fromX, fromY, toX, toY int) (board.GameResult, error) {
	if _, err := e.Select(fromX, fromY); err != nil {
		return board.GameResult{}, err
	}
	res, err := e.Move(toX, toY)
	if err != nil {
		e.Deselect()
	}
	return res, err
}

func (e *Engine) checkPlaying() error {
	switch e.state {
	case Setup:
		return ErrNotStarted
	case GameOver:
		return ErrGameOver
	default:
		return nil
	}
}

// ID returns the session id, empty in Setup.
func (e *Engine) ID() string {
	return e.id
}

// State returns the session phase.
func (e *Engine) State() State {
	return e.state
}

// Board returns the live board, nil in Setup.
func (e *Engine) Board() *board.Board {
	return e.board
}

// Turn returns the side to move. White in Setup.
func (e *Engine) Turn() board.Color {
	if e.turns == nil {
		return board.White
	}
	return e.turns.CurrentTurn()
}

// Selection returns the selected piece, if any.
func (e *Engine) Selection() (Selection, bool) {
	if e.turns == nil {
		return Selection{}, false
	}
	return e.turns.Selection()
}

// IsSelected reports whether (x, y) holds the selected piece.
func (e *Engine) IsSelected(x, y int) bool {
	return e.turns != nil && e.turns.IsSelectedPosition(x, y)
}

// Winner returns the winning color once the game is over.
func (e *Engine) Winner() (board.Color, bool) {
	if e.board == nil {
		return board.White, false
	}
	return e.board.Result().Winner()
}

// HalfMoves returns the number of moves played this session.
func (e *Engine) HalfMoves() int {
	return e.moves
}

// Elapsed returns the time since the session started, zero in Setup.
func (e *Engine) Elapsed() time.Duration {
	if e.state == Setup {
		return 0
	}
	return time.Since(e.started)
}
