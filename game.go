package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/invasion/common"
	"github.com/milk9111/invasion/ecs"
	"github.com/milk9111/invasion/ecs/component"
	"github.com/milk9111/invasion/ecs/entity"
	"github.com/milk9111/invasion/ecs/system"
	"github.com/milk9111/invasion/prefabs"
	"github.com/milk9111/invasion/presentation"
	"github.com/milk9111/invasion/timer"
)

type Options struct {
	Debug       bool
	ReplayIntro bool
	Progress    *presentation.Progress
	Watcher     *prefabs.Watcher
}

type Game struct {
	frames int
	debug  bool

	clock *timer.Clock
	sched *timer.Scheduler
	store *presentation.Store

	progress *presentation.Progress
	watcher  *prefabs.Watcher

	world   *ecs.World
	systems *ecs.Scheduler
	physics *system.KinematicSystem
	render  *system.RenderSystem
	cue     *system.CueSystem

	ufo          ecs.Entity
	controlsSpec *prefabs.ControlsSpec
	controls     *ControlsUI
}

func NewGame(opts Options) *Game {
	progress := opts.Progress
	if progress == nil {
		progress = presentation.NewProgress(nil)
	}

	// a returning player skips the intro framing, the UFO still flies off
	playing := opts.ReplayIntro || !progress.IntroSeen()

	clock := timer.NewClock()
	g := &Game{
		debug:    opts.Debug,
		clock:    clock,
		sched:    timer.NewScheduler(clock),
		store:    presentation.NewStore(playing),
		progress: progress,
		watcher:  opts.Watcher,
		world:    ecs.NewWorld(),
	}

	g.physics = system.NewKinematicSystem(ebiten.TPS())
	g.render = system.NewRenderSystem(g.physics)
	g.render.Debug = opts.Debug
	g.cue = system.NewCueSystem(prefabs.LoadScript)
	g.systems = ecs.NewScheduler(
		system.NewCinematicSystem(clock),
		g.cue,
		system.NewBeamSystem(clock),
		g.physics,
		system.NewTTLSystem(),
		system.NewOverlaySystem(),
		g.render,
	)

	g.store.Subscribe(func(c presentation.Change) {
		if c.CinematicPlaying {
			return
		}
		if err := g.progress.MarkIntroSeen(); err != nil {
			log.Printf("[progress] save failed: %v", err)
		}
	})

	g.loadControlsSpec()
	g.spawnUFO()
	return g
}

func (g *Game) loadControlsSpec() {
	spec, err := prefabs.LoadControlsSpec()
	if err != nil {
		log.Printf("failed to load controls spec: %v", err)
		spec = &prefabs.ControlsSpec{Title: "CONTROLS"}
	}
	g.controlsSpec = spec
}

func (g *Game) spawnUFO() {
	ufo, _, err := entity.NewUFO(g.world, g.clock, g.store, nil)
	if err != nil {
		log.Printf("failed to spawn ufo: %v", err)
		return
	}
	g.ufo = ufo
}

// restartCinematic rebuilds the actor so its timeline and one-shot
// notification start over.
func (g *Game) restartCinematic() {
	if g.ufo.Valid() {
		ecs.DestroyEntity(g.world, g.ufo)
	}
	g.store.StartCinematic()
	g.spawnUFO()
}

func (g *Game) openControls() {
	if g.controls != nil {
		return
	}
	if _, open := system.OpenOverlay(g.world, entity.ControlsOverlayName); open {
		return
	}

	var ui *ControlsUI
	_, life, err := entity.NewOverlay(g.world, g.sched, entity.ControlsOverlayName, g.controlsSpec.CloseDelay(), func() {
		if g.controls == ui {
			g.controls = nil
		}
	})
	if err != nil {
		log.Printf("failed to open controls: %v", err)
		return
	}
	ui = NewControlsUI(g.controlsSpec, g.clock, life)
	g.controls = ui
}

func (g *Game) Update() error {
	g.frames++

	g.clock.Advance(timer.TickDuration(ebiten.TPS()))
	g.sched.Update()

	g.handleInput()
	g.handleReloads()

	g.systems.Update(g.world)
	g.controls.Update()

	return nil
}

func (g *Game) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1), inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.openControls()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if err := system.RequestOverlayClose(g.world, entity.ControlsOverlayName); err != nil {
			log.Printf("failed to request close: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.restartCinematic()
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		g.debug = !g.debug
		g.render.Debug = g.debug
	}
}

func (g *Game) handleReloads() {
	if g.watcher == nil {
		return
	}
	for _, change := range g.watcher.Poll() {
		log.Printf("[watch] %s changed", change.Name)
		switch {
		case change.Script:
			g.cue.Invalidate(change.Name)
		case change.Name == prefabs.UFOSpecFile:
			g.reloadUFOSpec()
		case change.Name == prefabs.ControlsSpecFile:
			g.loadControlsSpec()
		}
	}
}

// reloadUFOSpec queues the new timeline on running actors; it takes effect on
// the next restart so a flight in progress is not bent mid-air.
func (g *Game) reloadUFOSpec() {
	spec, err := prefabs.LoadUFOSpec()
	if err != nil {
		log.Printf("failed to reload ufo spec: %v", err)
		return
	}
	cfg, err := spec.CinematicConfig()
	if err != nil {
		log.Printf("ufo spec rejected: %v", err)
		return
	}
	ecs.ForEach(g.world, component.CinematicActorComponent.Kind(), func(_ ecs.Entity, actor *component.CinematicActor) {
		actor.Controller.SetConfig(cfg)
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.systems.Draw(g.world, screen)
	g.controls.Draw(screen)

	if !g.debug {
		return
	}
	phase := "none"
	if actor, ok := ecs.Get(g.world, g.ufo, component.CinematicActorComponent.Kind()); ok {
		phase = actor.Controller.Phase().String()
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    t=%.2fs    phase=%s    playing=%v    bodies=%d",
		g.frames, ebiten.ActualFPS(), g.clock.Seconds(), phase, g.store.IsCinematicPlaying(), g.physics.BodyCount()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
