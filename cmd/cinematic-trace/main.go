package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/milk9111/invasion/ecs"
	"github.com/milk9111/invasion/ecs/component"
	"github.com/milk9111/invasion/ecs/entity"
	"github.com/milk9111/invasion/ecs/system"
	"github.com/milk9111/invasion/overlay"
	"github.com/milk9111/invasion/prefabs"
	"github.com/milk9111/invasion/presentation"
	"github.com/milk9111/invasion/timer"
)

// cinematic-trace runs the intro scene without a window and prints the UFO
// timeline, for checking prefab edits.
func main() {
	tps := flag.Int("tps", 60, "simulated ticks per second")
	duration := flag.Duration("duration", 14*time.Second, "simulated scene length")
	every := flag.Int("every", 30, "print one row every N ticks (phase edges always print)")
	openAt := flag.Duration("open-controls", -1, "open the controls overlay at this scene time")
	closeAt := flag.Duration("close-controls", -1, "request the controls overlay to close at this scene time")
	dir := flag.String("prefabs", prefabs.Dir, "prefab override directory")
	flag.Parse()

	prefabs.Dir = *dir
	if *every <= 0 {
		*every = 1
	}

	clock := timer.NewClock()
	sched := timer.NewScheduler(clock)
	store := presentation.NewStore(true)
	w := ecs.NewWorld()

	systems := ecs.NewScheduler(
		system.NewCinematicSystem(clock),
		system.NewCueSystem(prefabs.LoadScript),
		system.NewBeamSystem(clock),
		system.NewKinematicSystem(*tps),
		system.NewTTLSystem(),
		system.NewOverlaySystem(),
	)

	ufo, _, err := entity.NewUFO(w, clock, store, nil)
	if err != nil {
		log.Fatal(err)
	}

	controls, err := prefabs.LoadControlsSpec()
	if err != nil {
		log.Printf("failed to load controls spec: %v", err)
	}

	out := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(out, "tick\tt\tphase\tx\tplaying\tcontrols")

	step := timer.TickDuration(*tps)
	opened, closeSent := false, false
	controlsState := "-"
	lastPhase := ""
	tick := 0
	for clock.Elapsed() < *duration {
		tick++
		clock.Advance(step)
		sched.Update()

		if *openAt >= 0 && !opened && clock.Elapsed() >= *openAt {
			opened = true
			_, life, err := entity.NewOverlay(w, sched, entity.ControlsOverlayName, controls.CloseDelay(), func() {
				fmt.Fprintf(out, "%d\t%.3f\tcontrols closed\t\t\t\n", tick, clock.Seconds())
			})
			if err != nil {
				log.Fatal(err)
			}
			controlsState = life.State().String()
			life.OnChange(func(_, to overlay.Visibility) { controlsState = to.String() })
		}
		if *closeAt >= 0 && opened && !closeSent && clock.Elapsed() >= *closeAt {
			closeSent = true
			if err := system.RequestOverlayClose(w, entity.ControlsOverlayName); err != nil {
				log.Fatal(err)
			}
		}

		systems.Update(w)

		actor, ok := ecs.Get(w, ufo, component.CinematicActorComponent.Kind())
		if !ok {
			break
		}
		phase := actor.Controller.Phase().String()
		edge := phase != lastPhase
		lastPhase = phase

		if !edge && tick%*every != 0 {
			continue
		}
		t, _ := ecs.Get(w, ufo, component.TransformComponent.Kind())
		fmt.Fprintf(out, "%d\t%.3f\t%s\t%.3f\t%v\t%s\n", tick, clock.Seconds(), phase, t.X, store.IsCinematicPlaying(), controlsState)
	}
	out.Flush()
}
