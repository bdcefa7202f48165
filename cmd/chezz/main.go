package main

import (
	"flag"
	"log"
	"os"

	"github.com/gbs0/chezz-univoid-game/internal/board"
	"github.com/gbs0/chezz-univoid-game/internal/config"
	"github.com/gbs0/chezz-univoid-game/internal/engine"
	"github.com/gbs0/chezz-univoid-game/internal/protocol"
	"github.com/gbs0/chezz-univoid-game/internal/storage"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	board.DebugMoveValidation = cfg.DebugMoves

	// Statistics are optional; play continues without them
	var store *storage.Storage
	if !cfg.NoStorage {
		store, err = storage.OpenDefault(cfg.DataDir)
		if err != nil {
			log.Printf("Warning: storage not available: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	eng := engine.NewEngine()

	p := protocol.New(eng, store, os.Stdin, os.Stdout)
	if cfg.BoardSize != 0 {
		p.SetBoardSize(cfg.BoardSize)
	}
	if err := p.Run(); err != nil {
		log.Printf("input error: %v", err)
	}
}
