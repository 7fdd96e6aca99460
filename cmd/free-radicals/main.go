package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/free-radicals/audio"
	"github.com/lixenwraith/free-radicals/config"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "free-radicals: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nFREE-RADICALS CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	// Audio is optional, the simulation runs silent without a device
	cues := audio.NewCuePlayer(cfg.Audio)
	if err := cues.Init(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer cues.Close()

	session := NewSession(cfg, screen, cues)
	defer session.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session.Serve(ctx)

	run(ctx, screen, session, cfg.FrameInterval())
}

// run drives fixed-rate frames and terminal input until the session quits
func run(ctx context.Context, screen tcell.Screen, session *Session, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !session.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			session.Step()
		}
	}
}
