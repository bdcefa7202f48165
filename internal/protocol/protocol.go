// Package protocol drives an engine from a line-oriented text protocol.
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gbs0/chezz-univoid-game/internal/board"
	"github.com/gbs0/chezz-univoid-game/internal/engine"
	"github.com/gbs0/chezz-univoid-game/internal/storage"
)

var errUsage = errors.New("bad arguments")

// Protocol reads commands from in and writes responses to out.
type Protocol struct {
	engine *engine.Engine
	store  *storage.Storage // nil runs without persistence
	in     io.Reader
	out    io.Writer

	// Board size used by "newgame" without an argument
	size int
}

// New creates a protocol handler. store may be nil.
func New(eng *engine.Engine, store *storage.Storage, in io.Reader, out io.Writer) *Protocol {
	p := &Protocol{
		engine: eng,
		store:  store,
		in:     in,
		out:    out,
		size:   board.MinSize,
	}

	if store != nil {
		if prefs, err := store.LoadPreferences(); err != nil {
			log.Printf("Warning: failed to load preferences: %v", err)
		} else {
			p.size = prefs.BoardSize
		}
	}

	eng.OnGameOver = func(s engine.Summary) {
		p.record(storage.GameRecord{
			Winner:    s.Winner,
			Size:      s.Size,
			HalfMoves: s.HalfMoves,
			Duration:  s.Duration,
		})
	}

	return p
}

// SetBoardSize sets the size used by "newgame" without an argument.
func (p *Protocol) SetBoardSize(size int) {
	p.size = board.ClampSize(size)
}

// BoardSize returns the size used by "newgame" without an argument.
func (p *Protocol) BoardSize() int {
	return p.size
}

// Run processes commands until "quit" or end of input.
func (p *Protocol) Run() error {
	scanner := bufio.NewScanner(p.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if board.DebugMoveValidation {
			log.Printf("[PROTOCOL] %s", line)
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "hello":
			p.handleHello()
		case "isready":
			p.send("readyok")
		case "newgame":
			p.handleNewGame(args)
		case "position":
			p.handlePosition(args)
		case "select":
			p.handleSelect(args)
		case "moves":
			p.handleMoves()
		case "deselect":
			p.engine.Deselect()
		case "move":
			p.handleMove(args)
		case "play":
			p.handlePlay(args)
		case "turn":
			p.send("turn %s", p.engine.Turn())
		case "d":
			p.handleDisplay()
		case "layout":
			p.handleLayout()
		case "size":
			p.handleSize(args)
		case "stats":
			p.handleStats()
		case "reset":
			p.abandon()
			p.engine.Reset()
		case "quit":
			p.abandon()
			return nil
		default:
			p.info("unknown command %s", cmd)
		}
	}

	return scanner.Err()
}

func (p *Protocol) handleHello() {
	p.send("id name Chezz")
	p.send("id author Chezz Team")
	p.send("id size %d..%d", board.MinSize, board.MaxSize)
	p.send("hellook")
}

// handleNewGame starts a fresh session, abandoning any running one.
// Format: newgame [size]
func (p *Protocol) handleNewGame(args []string) {
	size := p.size
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			p.info("invalid size %s", args[0])
			return
		}
		size = n
	}

	p.abandon()
	p.engine.Reset()
	if err := p.engine.Start(size); err != nil {
		p.info("%v", err)
		return
	}
	p.sendGame()
}

// handlePosition starts a session from a layout.
// Format: position <layout> [w|b]
func (p *Protocol) handlePosition(args []string) {
	if len(args) == 0 {
		p.info("position: %v", errUsage)
		return
	}

	toMove := board.White
	if len(args) > 1 {
		c, err := board.ParseColor(args[1])
		if err != nil {
			p.info("%v", err)
			return
		}
		toMove = c
	}

	p.abandon()
	p.engine.Reset()
	if err := p.engine.StartFromLayout(args[0], toMove); err != nil {
		p.info("%v", err)
		return
	}
	p.sendGame()
}

// Format: select x y
func (p *Protocol) handleSelect(args []string) {
	xy, err := parseInts(args, 2)
	if err != nil {
		p.info("select: %v", err)
		return
	}

	moves, err := p.engine.Select(xy[0], xy[1])
	if err != nil {
		p.info("%v", err)
		return
	}

	sel, _ := p.engine.Selection()
	p.send("selected %s %s %s", sel.Piece.Color, sel.Piece.Kind, sel.Square)
	p.sendMoves(moves)
}

func (p *Protocol) handleMoves() {
	moves, ok := p.engine.LegalMoves()
	if !ok {
		p.info("%v", engine.ErrNoSelection)
		return
	}
	p.sendMoves(moves)
}

// Format: move x y
func (p *Protocol) handleMove(args []string) {
	xy, err := parseInts(args, 2)
	if err != nil {
		p.info("move: %v", err)
		return
	}

	res, err := p.engine.Move(xy[0], xy[1])
	if err != nil {
		p.info("%v", err)
		return
	}
	p.sendResult(res)
}

// Format: play fx fy tx ty
func (p *Protocol) handlePlay(args []string) {
	c, err := parseInts(args, 4)
	if err != nil {
		p.info("play: %v", err)
		return
	}

	res, err := p.engine.Play(c[0], c[1], c[2], c[3])
	if err != nil {
		p.info("%v", err)
		return
	}
	p.sendResult(res)
}

func (p *Protocol) handleDisplay() {
	b := p.engine.Board()
	if b == nil {
		p.info("%v", engine.ErrNotStarted)
		return
	}
	fmt.Fprint(p.out, b.String())
}

func (p *Protocol) handleLayout() {
	b := p.engine.Board()
	if b == nil {
		p.info("%v", engine.ErrNotStarted)
		return
	}
	p.send("layout %s %s", b.Layout(), p.engine.Turn())
}

// handleSize sets and stores the default board size.
// Format: size n
func (p *Protocol) handleSize(args []string) {
	n, err := parseInts(args, 1)
	if err != nil {
		p.info("size: %v", err)
		return
	}

	p.SetBoardSize(n[0])
	if p.store != nil {
		prefs, err := p.store.LoadPreferences()
		if err == nil {
			prefs.BoardSize = p.size
			err = p.store.SavePreferences(prefs)
		}
		if err != nil {
			log.Printf("Warning: failed to save preferences: %v", err)
		}
	}
	p.info("board size %d", p.size)
}

func (p *Protocol) handleStats() {
	if p.store == nil {
		p.info("storage disabled")
		return
	}

	stats, err := p.store.LoadStats()
	if err != nil {
		p.info("stats: %v", err)
		return
	}
	p.send("stats games %d white %d black %d abandoned %d longest %d shortest %d",
		stats.GamesPlayed, stats.WhiteWins, stats.BlackWins, stats.Abandoned,
		stats.LongestGame, stats.ShortestGame)
	p.send("stats whiterate %.1f playtime %s", stats.WhiteWinRate(), stats.TotalPlayTime.Round(time.Second))

	sizes := make([]string, 0, len(stats.GamesBySize))
	for _, sc := range stats.SizeCounts() {
		sizes = append(sizes, fmt.Sprintf("%d:%d", sc.Size, sc.Games))
	}
	p.send("%s", strings.TrimSpace("stats sizes "+strings.Join(sizes, " ")))
}

// abandon records the running session, if any, as abandoned.
func (p *Protocol) abandon() {
	if p.engine.State() != engine.InProgress {
		return
	}
	p.record(storage.GameRecord{
		Abandoned: true,
		Size:      p.engine.Board().Size(),
		HalfMoves: p.engine.HalfMoves(),
		Duration:  p.engine.Elapsed(),
	})
}

func (p *Protocol) record(rec storage.GameRecord) {
	if p.store == nil {
		return
	}
	if err := p.store.RecordGame(rec); err != nil {
		log.Printf("Warning: failed to record game: %v", err)
	}
}

func (p *Protocol) sendGame() {
	p.send("game %s size %d", p.engine.ID(), p.engine.Board().Size())
}

func (p *Protocol) sendMoves(moves board.MoveList) {
	if moves.Len() == 0 {
		p.send("moves")
		return
	}
	p.send("moves %s", moves)
}

func (p *Protocol) sendResult(res board.GameResult) {
	if w, ok := res.Winner(); ok {
		p.send("result gameover winner %s", w)
		return
	}
	p.send("result ongoing turn %s", p.engine.Turn())
}

func (p *Protocol) send(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Protocol) info(format string, args ...any) {
	p.send("info string "+format, args...)
}

// parseInts parses exactly n integer arguments.
func parseInts(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: want %d numbers, got %d", errUsage, n, len(args))
	}

	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, a)
		}
		out[i] = v
	}
	return out, nil
}
