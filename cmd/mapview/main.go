package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mapview/audio"
	"github.com/lixenwraith/mapview/constants"
)

var (
	noiseFlag = flag.Bool("noise", false, "fill the map from procedural noise instead of an empty canvas")
	seedFlag  = flag.Int64("seed", constants.DefaultNoiseSeed, "noise seed")
	debugFlag = flag.Bool("debug", false, "write diagnostics to "+logDir+"/"+logFileName)
	muteFlag  = flag.Bool("mute", false, "disable audio feedback")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before the crash is printed,
	// otherwise the trace lands on the alternate screen and vanishes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMAPVIEW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.EnableMouse()

	app := NewApp(*noiseFlag, *seedFlag)

	if !*muteFlag {
		engine, err := audio.NewEngine()
		if err != nil {
			// Non-fatal, the viewer can run without sound
			log.Printf("audio init failed: %v (continuing without audio)", err)
		}
		app.Audio = engine
		defer engine.Close()
	}

	eventChan := make(chan tcell.Event, 64)
	// Input polling uses a raw goroutine as it blocks on the terminal
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()

	app.Resize(screen.Size())
	app.Draw(screen)

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				app.Resize(ev.Size())
				screen.Sync()
			case *tcell.EventKey:
				if !app.HandleKey(ev) {
					return
				}
			case *tcell.EventMouse:
				app.HandleMouse(ev)
			}
			app.Draw(screen)

		case <-ticker.C:
			// Idle redraw keeps the frame in step with terminal size
			// even when no resize event was delivered
			app.Resize(screen.Size())
			app.Draw(screen)
		}
	}
}
