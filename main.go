package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/invasion/prefabs"
	"github.com/milk9111/invasion/presentation"
	"github.com/quasilyte/gdata/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	replayIntro := flag.Bool("replay-intro", false, "play the intro framing even if it was already seen")
	watch := flag.Bool("watch", false, "hot reload prefabs/ and prefabs/scripts/ from disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("invasion")

	manager, err := gdata.Open(gdata.Config{AppName: "invasion"})
	if err != nil {
		// progress is kept in memory only
		log.Printf("failed to open save data: %v", err)
		manager = nil
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("failed to watch %s: %v", prefabs.Dir, err)
		} else {
			defer watcher.Close()
		}
	}

	game := NewGame(Options{
		Debug:       *debug,
		ReplayIntro: *replayIntro,
		Progress:    presentation.NewProgress(manager),
		Watcher:     watcher,
	})

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
