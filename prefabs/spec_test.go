package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/invasion/cinematic"
	"github.com/milk9111/invasion/overlay"
	"github.com/stretchr/testify/require"
)

func useEmbedded(t *testing.T) {
	t.Helper()
	old := Dir
	Dir = ""
	t.Cleanup(func() { Dir = old })
}

func TestEmbeddedUFOSpecMatchesDefaults(t *testing.T) {
	useEmbedded(t)

	spec, err := LoadUFOSpec()
	require.NoError(t, err)

	cfg, err := spec.CinematicConfig()
	require.NoError(t, err)
	require.Equal(t, cinematic.DefaultConfig(), cfg)
	require.Equal(t, cinematic.DefaultBeamConfig(), spec.BeamConfig())

	require.Equal(t, -25.0, spec.Transform.X)
	require.Equal(t, 31.0, spec.Transform.Y)
	require.Equal(t, -18.0, spec.Transform.Z)
	require.InDelta(t, 0.691, spec.Transform.Scale, 1e-9)

	src, err := LoadScript(spec.CueScript)
	require.NoError(t, err)
	require.Contains(t, string(src), "banner(")
}

func TestEmbeddedControlsSpec(t *testing.T) {
	useEmbedded(t)

	spec, err := LoadControlsSpec()
	require.NoError(t, err)
	require.Equal(t, "CONTROLS", spec.Title)
	require.Equal(t, overlay.DefaultCloseDelay, spec.CloseDelay())
	require.Len(t, spec.Categories, 3)

	var actions []string
	for _, cat := range spec.Categories {
		for _, c := range cat.Controls {
			require.NotEmpty(t, c.Keys, c.Action)
			actions = append(actions, c.Action)
		}
	}
	require.Equal(t, []string{
		"Forward", "Backward", "Left", "Right", "Jump", "Run/Sprint",
		"Melee", "Kick", "Emote", "Pause",
	}, actions)
}

func TestCinematicConfigFallsBack(t *testing.T) {
	zero := 0.0
	spec := &UFOSpec{Speed: 4, StartX: &zero}
	cfg, err := spec.CinematicConfig()
	require.NoError(t, err)
	require.Equal(t, 3.0, cfg.HoldDuration)
	require.Equal(t, 4.0, cfg.Speed)
	require.Equal(t, 0.0, cfg.StartX)
	require.Equal(t, 50.0, cfg.EndX)

	var nilSpec *UFOSpec
	cfg, err = nilSpec.CinematicConfig()
	require.NoError(t, err)
	require.Equal(t, cinematic.DefaultConfig(), cfg)
}

func TestCinematicConfigRejectsBackwardsPath(t *testing.T) {
	start, end := 10.0, -10.0
	spec := &UFOSpec{StartX: &start, EndX: &end}
	cfg, err := spec.CinematicConfig()
	require.True(t, errors.Is(err, cinematic.ErrInvalidConfig))
	require.Equal(t, cinematic.DefaultConfig(), cfg)
}

func TestControlsDurations(t *testing.T) {
	var nilSpec *ControlsSpec
	require.Equal(t, overlay.DefaultCloseDelay, nilSpec.CloseDelay())
	require.Equal(t, overlay.DefaultCloseDelay, nilSpec.FadeDuration())

	spec := &ControlsSpec{CloseDelayMs: 500}
	require.Equal(t, 500*time.Millisecond, spec.FadeDuration())
	spec.FadeMs = 120
	require.Equal(t, 120*time.Millisecond, spec.FadeDuration())
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	require.NoError(t, os.WriteFile(filepath.Join(dir, UFOSpecFile), []byte("speed: 16\n"), 0o644))

	spec, err := LoadUFOSpec()
	require.NoError(t, err)
	cfg, err := spec.CinematicConfig()
	require.NoError(t, err)
	require.Equal(t, 16.0, cfg.Speed)

	// not on disk: embedded copy
	controls, err := LoadControlsSpec()
	require.NoError(t, err)
	require.Equal(t, "controls", controls.Name)
}

func TestLoadSpecErrors(t *testing.T) {
	useEmbedded(t)

	_, err := LoadSpec[UFOSpec]("missing.yaml")
	require.ErrorContains(t, err, "prefabs: load missing.yaml")
}

func TestCleanPaths(t *testing.T) {
	require.Equal(t, "ufo.yaml", cleanPrefabPath("prefabs/ufo.yaml"))
	require.Equal(t, "scripts/a.tengo", cleanScriptPath("a.tengo"))
	require.Equal(t, "scripts/a.tengo", cleanScriptPath("prefabs/scripts/a.tengo"))
	require.Equal(t, "", cleanScriptPath(""))
}

func TestClassify(t *testing.T) {
	c, ok := classify(filepath.Join("prefabs", "ufo.yaml"))
	require.True(t, ok)
	require.Equal(t, Change{Name: "ufo.yaml"}, c)

	c, ok = classify(filepath.Join("prefabs", "scripts", "ufo_cues.tengo"))
	require.True(t, ok)
	require.Equal(t, Change{Name: "scripts/ufo_cues.tengo", Script: true}, c)

	_, ok = classify("prefabs/notes.txt")
	require.False(t, ok)
}
