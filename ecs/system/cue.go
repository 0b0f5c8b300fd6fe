package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/invasion/ecs"
	"github.com/milk9111/invasion/ecs/component"
	"github.com/milk9111/invasion/prefabs"
)

const defaultBannerFrames = 120

// ScriptLoader returns the source of a cue script by path.
type ScriptLoader func(path string) ([]byte, error)

// CueSystem runs the entity's cue script on every cinematic phase edge. It
// must run after CinematicSystem in the same pass.
type CueSystem struct {
	load  ScriptLoader
	cache map[string]*tengo.Compiled
	// paths that failed to compile; retried after Invalidate
	broken map[string]bool
}

func NewCueSystem(load ScriptLoader) *CueSystem {
	if load == nil {
		load = prefabs.LoadScript
	}
	return &CueSystem{
		load:   load,
		cache:  make(map[string]*tengo.Compiled),
		broken: make(map[string]bool),
	}
}

// Invalidate drops a compiled script so the next cue recompiles it. An empty
// path drops everything.
func (s *CueSystem) Invalidate(path string) {
	if s == nil {
		return
	}
	if path == "" {
		clear(s.cache)
		clear(s.broken)
		return
	}
	path = normalizeScript(path)
	delete(s.cache, path)
	delete(s.broken, path)
}

func (s *CueSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, pe := range PhaseEvents(w) {
		cue, ok := ecs.Get(w, pe.Entity, component.CueScriptComponent.Kind())
		if !ok || strings.TrimSpace(cue.Path) == "" {
			continue
		}
		if err := s.run(w, cue.Path, pe); err != nil {
			log.Printf("[cue] entity=%d script %s: %v", pe.Entity, cue.Path, err)
		}
	}
}

func (s *CueSystem) run(w *ecs.World, path string, pe PhaseEvent) error {
	compiled, err := s.compiled(path)
	if err != nil || compiled == nil {
		return err
	}

	tr := pe.Transition
	vars := map[string]any{
		"phase":   tr.To.String(),
		"from":    tr.From.String(),
		"elapsed": tr.Elapsed,
		"x":       tr.X,
		"banner":  bannerFunc(w),
		"log":     logFunc(path),
	}
	for name, v := range vars {
		if err := compiled.Set(name, v); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return compiled.Run()
}

func (s *CueSystem) compiled(path string) (*tengo.Compiled, error) {
	key := normalizeScript(path)
	if c, ok := s.cache[key]; ok {
		return c, nil
	}
	if s.broken[key] {
		return nil, nil
	}

	src, err := s.load(path)
	if err != nil {
		s.broken[key] = true
		return nil, err
	}

	script := tengo.NewScript(src)
	noop := &tengo.UserFunction{Name: "noop", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return tengo.UndefinedValue, nil
	}}
	_ = script.Add("phase", "")
	_ = script.Add("from", "")
	_ = script.Add("elapsed", 0.0)
	_ = script.Add("x", 0.0)
	_ = script.Add("banner", noop)
	_ = script.Add("log", noop)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		s.broken[key] = true
		return nil, err
	}
	s.cache[key] = compiled
	return compiled, nil
}

func bannerFunc(w *ecs.World) *tengo.UserFunction {
	return &tengo.UserFunction{Name: "banner", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		text, ok := tengo.ToString(args[0])
		if !ok || text == "" {
			return tengo.FalseValue, nil
		}
		frames := defaultBannerFrames
		if len(args) > 1 {
			if n, ok := tengo.ToInt(args[1]); ok && n > 0 {
				frames = n
			}
		}
		if _, err := SpawnBanner(w, text, frames); err != nil {
			return nil, err
		}
		return tengo.TrueValue, nil
	}}
}

func logFunc(path string) *tengo.UserFunction {
	return &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			if s, ok := tengo.ToString(a); ok {
				parts = append(parts, s)
			}
		}
		log.Printf("[cue] %s: %s", path, strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}
}

// SpawnBanner creates a caption entity that lives for frames ticks.
func SpawnBanner(w *ecs.World, text string, frames int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BannerComponent.Kind(), &component.Banner{Text: text}); err != nil {
		return 0, fmt.Errorf("banner: add banner: %w", err)
	}
	if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: frames}); err != nil {
		return 0, fmt.Errorf("banner: add ttl: %w", err)
	}
	return e, nil
}

func normalizeScript(path string) string {
	path = strings.TrimPrefix(strings.TrimSpace(path), "prefabs/")
	return strings.TrimPrefix(path, "scripts/")
}
