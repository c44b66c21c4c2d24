package main

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gekko3d/rayvox/voxelrt/rt/app"
	"github.com/gekko3d/rayvox/voxelrt/rt/hud"
)

type viewer struct {
	app *app.App
}

// runWindow blocks until the window is closed or Escape is pressed.
func runWindow(a *app.App) error {
	ebiten.SetWindowTitle("RayVox")
	ebiten.SetWindowSize(a.Config.Width, a.Config.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	return ebiten.RunGame(&viewer{app: a})
}

func turnKeys(plus, minus ebiten.Key) int {
	n := 0
	if inpututil.IsKeyJustPressed(plus) {
		n++
	}
	if inpututil.IsKeyJustPressed(minus) {
		n--
	}
	return n
}

func pollInput() app.InputState {
	_, wheel := ebiten.Wheel()
	return app.InputState{
		Forward:          ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:         ebiten.IsKeyPressed(ebiten.KeyS),
		Left:             ebiten.IsKeyPressed(ebiten.KeyA),
		Right:            ebiten.IsKeyPressed(ebiten.KeyD),
		Up:               ebiten.IsKeyPressed(ebiten.KeySpace),
		Down:             ebiten.IsKeyPressed(ebiten.KeyControlLeft),
		TurnX:            turnKeys(ebiten.KeyArrowLeft, ebiten.KeyArrowRight),
		TurnZ:            turnKeys(ebiten.KeyArrowUp, ebiten.KeyArrowDown),
		Wheel:            float32(wheel),
		ToggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyShiftRight),
		Quit:             inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (v *viewer) Update() error {
	in := pollInput()
	if in.Quit {
		return ebiten.Termination
	}
	if in.ToggleFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a := v.app
	a.Update(in, a.Clock.Tick(time.Now()))
	if _, err := a.Render(context.Background()); err != nil {
		return err
	}
	if a.DebugMode {
		hud.Draw(a.Image, a.Overlay())
	}
	ebiten.SetWindowTitle(a.Clock.Title())
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.WritePixels(v.app.Image.Pix)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.app.Resize(outsideWidth, outsideHeight)
	return v.app.Config.Width, v.app.Config.Height
}
