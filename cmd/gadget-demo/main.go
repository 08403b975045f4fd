// gadget-demo shows the toolkit end to end: hinted panes, an
// animated sprite, event handling and feedback tones.
package main

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/gadget/app"
	"github.com/lixenwraith/gadget/gadget"
	"github.com/lixenwraith/gadget/geometry"
	"github.com/lixenwraith/gadget/render"
	"github.com/lixenwraith/gadget/sound"
	"github.com/lixenwraith/gadget/terminal"
)

func main() {
	screen, err := terminal.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}

	a := app.New(screen, app.DefaultConfig())

	player := sound.NewPlayer()
	if err := player.Init(); err != nil {
		// keep running without sound
		player.SetMuted(true)
	}
	defer player.Close()

	buildUI(a, player)

	if err := a.Run(context.Background()); err != nil && err != context.Canceled {
		log.Fatalf("run: %v", err)
	}
}

func buildUI(a *app.App, player *sound.Player) {
	root := a.Root()

	// full-screen backdrop with a vertical gradient
	backdrop := gadget.NewText(terminal.Cell{Rune: ' ', Bg: terminal.RGB{R: 20, G: 20, B: 40}})
	root.AddGadget(backdrop)
	if err := backdrop.SetSizeHint(gadget.SizeHint{
		Height: gadget.Float(1.0),
		Width:  gadget.Float(1.0),
	}); err != nil {
		log.Fatalf("backdrop hint: %v", err)
	}
	shades := render.Gradient(
		terminal.RGB{R: 10, G: 10, B: 30},
		terminal.RGB{R: 60, G: 20, B: 80},
		16,
	)
	backdrop.Bind(gadget.PropSize, func() { paintBackdrop(backdrop, shades) })
	paintBackdrop(backdrop, shades)

	// centered status pane, half the screen wide
	status := gadget.NewText(terminal.Cell{Rune: ' ', Fg: terminal.White, Bg: terminal.RGB{R: 40, G: 40, B: 60}})
	backdrop.AddGadget(status)
	if err := status.SetSizeHint(gadget.SizeHint{
		Height: gadget.Float(0.2),
		Width:  gadget.Float(0.5),
		MinHeight: gadget.Int(3),
	}); err != nil {
		log.Fatalf("status hint: %v", err)
	}
	status.SetPosHint(gadget.PosHint{
		Anchor: gadget.AnchorTop,
		Y:      gadget.Float(0.05),
		X:      gadget.Float(0.5),
	})
	status.Bind(gadget.PropSize, func() { paintStatus(status) })
	paintStatus(status)

	// a half-block sprite bouncing between screen edges
	sprite := gadget.NewGraphics(render.HalfBlock{})
	backdrop.AddGadget(sprite)
	sprite.SetSize(geometry.Size{Height: 4, Width: 8})
	sprite.SetPos(geometry.Point{Y: 8, X: 4})
	paintSprite(sprite)
	bounce(sprite, player)

	// invisible frontmost gadget catches every key
	quitter := &keyHandler{Gadget: gadget.NewGadget(), app: a, player: player}
	root.AddGadget(quitter)
	quitter.SetVisible(false)
}

func paintBackdrop(t *gadget.Text, shades []terminal.RGB) {
	size := t.Size()
	for y := 0; y < size.Height; y++ {
		shade := shades[y*len(shades)/max(size.Height, 1)]
		for x := 0; x < size.Width; x++ {
			t.SetCell(y, x, terminal.Cell{Rune: ' ', Bg: shade})
		}
	}
}

func paintStatus(t *gadget.Text) {
	t.Clear()
	t.SetString(1, 2, "gadget demo", terminal.White, t.DefaultCell().Bg, terminal.AttrBold)
	t.SetString(2, 2, "q quits, any key clicks", terminal.RGB{R: 180, G: 180, B: 200}, t.DefaultCell().Bg, 0)
}

func paintSprite(g *gadget.Graphics) {
	tex := g.Texture()
	size := tex.Size()
	cy, cx := float64(size.Height)/2, float64(size.Width)/2
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			dy, dx := float64(y)-cy+0.5, float64(x)-cx+0.5
			if math.Hypot(dy/cy, dx/cx) <= 1 {
				tex.Set(y, x, render.RGBA{R: 250, G: 180, B: 40, A: 255})
			}
		}
	}
}

// bounce tweens the sprite to a corner and schedules the next leg on
// completion
func bounce(g *gadget.Graphics, player *sound.Player) {
	parent := g.Parent()
	if parent == nil {
		return
	}
	bounds := parent.Base().Size()
	target := geometry.Point{
		Y: bounds.Height - g.Size().Height - g.Pos().Y,
		X: bounds.Width - g.Size().Width - g.Pos().X,
	}
	if target.Y < 0 {
		target.Y = 0
	}
	if target.X < 0 {
		target.X = 0
	}
	_, err := g.Tween(gadget.TweenConfig{
		Duration: 2 * time.Second,
		Easing:   geometry.InOutQuad,
		Pos:      &target,
		OnComplete: func() {
			player.Click()
			bounce(g, player)
		},
	})
	if err != nil {
		log.Printf("bounce: %v", err)
	}
}

type keyHandler struct {
	gadget.Gadget
	app    *app.App
	player *sound.Player
}

func (h *keyHandler) OnKey(ev terminal.KeyEvent) bool {
	if ev.Key == terminal.KeyRune && ev.Rune == 'q' || ev.Key == terminal.KeyEscape {
		h.player.Beep()
		h.app.Quit()
		return true
	}
	h.player.Click()
	return true
}
