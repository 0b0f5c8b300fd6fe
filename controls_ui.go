package main

import (
	"image/color"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/invasion/common"
	"github.com/milk9111/invasion/overlay"
	"github.com/milk9111/invasion/prefabs"
	"github.com/milk9111/invasion/timer"
	"golang.org/x/image/font/basicfont"
)

var (
	white  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	accent = color.NRGBA{R: 0x7c, G: 0xff, B: 0xaa, A: 0xff}
	muted  = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xbb, A: 0xff}
)

// ControlsUI is the keyboard reference panel. The ebitenui tree is drawn to
// an offscreen canvas which is then composited with the lifecycle fade.
type ControlsUI struct {
	ui     *ebitenui.UI
	canvas *ebiten.Image
	clock  *timer.Clock
	life   *overlay.Lifecycle
	fade   time.Duration

	changedAt time.Duration
}

// NewControlsUI builds the panel from spec. Back asks the lifecycle to close;
// the panel stays on screen while it fades out.
func NewControlsUI(spec *prefabs.ControlsSpec, clock *timer.Clock, life *overlay.Lifecycle) *ControlsUI {
	c := &ControlsUI{
		canvas:    ebiten.NewImage(common.BaseWidth, common.BaseHeight),
		clock:     clock,
		life:      life,
		fade:      spec.FadeDuration(),
		changedAt: clock.Elapsed(),
	}
	life.OnChange(func(_, _ overlay.Visibility) {
		c.changedAt = c.clock.Elapsed()
	})
	c.ui = buildControlsUI(spec, life.RequestClose)
	return c
}

func buildControlsUI(spec *prefabs.ControlsSpec, back func()) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x08, G: 0x0a, B: 0x14, A: 225})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x44, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x55, B: 0x66, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	title := spec.Title
	if title == "" {
		title = "CONTROLS"
	}
	panel.AddChild(widget.NewText(widget.TextOpts.Text(title, &face, white), widget.TextOpts.WidgetOpts(center)))
	if spec.Subtitle != "" {
		panel.AddChild(widget.NewText(widget.TextOpts.Text(spec.Subtitle, &face, muted), widget.TextOpts.WidgetOpts(center)))
	}

	for _, cat := range spec.Categories {
		panel.AddChild(widget.NewText(widget.TextOpts.Text(strings.ToUpper(cat.Title), &face, accent)))

		grid := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(2),
				widget.GridLayoutOpts.Spacing(48, 4),
				widget.GridLayoutOpts.Stretch([]bool{true, false}, nil),
			)),
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
		)
		for _, ctl := range cat.Controls {
			grid.AddChild(widget.NewText(widget.TextOpts.Text(ctl.Action, &face, white)))
			grid.AddChild(widget.NewText(widget.TextOpts.Text(strings.Join(ctl.Keys, " / "), &face, muted)))
		}
		panel.AddChild(grid)
	}

	label := spec.BackLabel
	if label == "" {
		label = "Back"
	}
	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 16, Right: 16}),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			back()
		}),
	))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// Update only feeds input while the panel is fully interactive.
func (c *ControlsUI) Update() {
	if c == nil || c.life.State() != overlay.Visible {
		return
	}
	c.ui.Update()
}

func (c *ControlsUI) Draw(screen *ebiten.Image) {
	if c == nil {
		return
	}
	alpha := overlay.FadeAlpha(c.life.State(), c.clock.Elapsed()-c.changedAt, c.fade)
	if alpha <= 0 {
		return
	}

	c.canvas.Clear()
	c.ui.Draw(c.canvas)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(c.canvas, op)
}
