package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/invasion/common"
	"github.com/milk9111/invasion/ecs"
	"github.com/milk9111/invasion/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const beamRays = 9

// RenderSystem draws the scene: far things first, then beams, then banners on
// top. It never mutates the world.
type RenderSystem struct {
	face    *text.GoXFace
	physics *KinematicSystem
	Debug   bool
}

func NewRenderSystem(physics *KinematicSystem) *RenderSystem {
	return &RenderSystem{
		face:    text.NewGoXFace(basicfont.Face7x13),
		physics: physics,
	}
}

// Update is a no-op; RenderSystem only draws.
func (r *RenderSystem) Update(_ *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(color.RGBA{R: 12, G: 14, B: 28, A: 255})
	vector.FillRect(screen, 0, common.BaseHeight*0.8, common.BaseWidth, common.BaseHeight*0.2, color.RGBA{R: 28, G: 30, B: 40, A: 255}, false)

	beams := w.Query(component.BeamComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range beams {
		r.drawBeam(w, screen, e)
	}

	ufos := w.Query(component.UFOTagComponent.Kind(), component.TransformComponent.Kind())
	sort.SliceStable(ufos, func(i, j int) bool {
		ti, _ := ecs.Get(w, ufos[i], component.TransformComponent.Kind())
		tj, _ := ecs.Get(w, ufos[j], component.TransformComponent.Kind())
		if ti.Z != tj.Z {
			return ti.Z < tj.Z
		}
		return uint64(ufos[i]) < uint64(ufos[j])
	})
	for _, e := range ufos {
		r.drawUFO(w, screen, e)
	}

	r.drawBanners(w, screen)
}

func (r *RenderSystem) drawUFO(w *ecs.World, screen *ebiten.Image, e ecs.Entity) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	sx, sy, f := common.Project(t.X, t.Y, t.Z)
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	unit := float32(common.PixelsPerUnit * f * scale)
	cx, cy := float32(sx), float32(sy)

	vector.FillCircle(screen, cx, cy-unit*0.8, unit*1.6, colornames.Lightskyblue, true)
	vector.FillRect(screen, cx-unit*5, cy-unit*0.6, unit*10, unit*1.2, colornames.Silver, true)
	vector.FillRect(screen, cx-unit*3, cy+unit*0.6, unit*6, unit*0.6, colornames.Dimgray, true)
	for i := -2; i <= 2; i++ {
		vector.FillCircle(screen, cx+float32(i)*unit*1.8, cy, unit*0.3, colornames.Gold, true)
	}

	if !r.Debug || r.physics == nil {
		return
	}
	bb, ok := r.physics.Bounds(w, e)
	if !ok {
		return
	}
	lx, ty, _ := common.Project(bb.L, bb.T, t.Z)
	rx, by, _ := common.Project(bb.R, bb.B, t.Z)
	vector.StrokeRect(screen, float32(lx), float32(ty), float32(rx-lx), float32(by-ty), 1, color.RGBA{R: 255, A: 200}, false)
}

func (r *RenderSystem) drawBeam(w *ecs.World, screen *ebiten.Image, e ecs.Entity) {
	b, ok := ecs.Get(w, e, component.BeamComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	alpha := uint8(common.Clamp(b.Opacity, 0, 1) * 255)
	clr := color.RGBA{R: 120, G: 255, B: 170, A: alpha}

	topX, topY, f := common.Project(t.X, t.Y, t.Z)
	_, bottomY, _ := common.Project(t.X, t.Y-b.Length, t.Z)
	spread := b.Radius * common.PixelsPerUnit * f
	for i := 0; i < beamRays; i++ {
		// rays sweep around the cone as it spins
		a := b.Spin + float64(i)*2*math.Pi/beamRays
		bx := topX + math.Cos(a)*spread
		vector.StrokeLine(screen, float32(topX), float32(topY), float32(bx), float32(bottomY), 2, clr, true)
	}
}

func (r *RenderSystem) drawBanners(w *ecs.World, screen *ebiten.Image) {
	banners := w.Query(component.BannerComponent.Kind())
	sort.Slice(banners, func(i, j int) bool { return uint64(banners[i]) < uint64(banners[j]) })

	y := 48.0
	for _, e := range banners {
		b, ok := ecs.Get(w, e, component.BannerComponent.Kind())
		if !ok || b.Text == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Scale(2, 2)
		op.GeoM.Translate(common.BaseWidth/2, y)
		op.ColorScale.ScaleWithColor(colornames.White)
		text.Draw(screen, b.Text, r.face, op)
		y += 36
	}
}
