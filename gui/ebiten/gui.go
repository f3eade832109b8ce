package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jetsetilly/testchip8/gui"
	"github.com/jetsetilly/testchip8/hardware/spec"
	"github.com/jetsetilly/testchip8/logger"
	"github.com/jetsetilly/testchip8/version"
	input "github.com/quasilyte/ebitengine-input"
)

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	endGui chan bool

	state gui.State
	scale int

	main *ebiten.Image

	// flags from the most recent image
	paused bool
	sound  bool

	inputHandler *input.Handler
	inputSystem  input.System

	// inputs waiting for room in the UserInput channel
	pending []gui.Input
}

func (eg *guiEbiten) Update() error {
	// deal with quit condition
	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	// handle user input
	err := eg.inputKeyboard()
	if err != nil {
		return ebiten.Termination
	}
	eg.input()

	// drag and drop of files is a special type of input
	err = eg.inputDragAndDrop()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	// change state if necessary
	select {
	case eg.state = <-eg.g.State:
	default:
	}

	// retrieve any pending images
	select {
	case img := <-eg.g.SetImage:
		eg.paused = img.Paused
		eg.sound = img.Sound
		if img.Main != nil {
			if eg.main == nil || eg.main.Bounds() != img.Main.Bounds() {
				eg.main = ebiten.NewImage(img.Main.Bounds().Dx(), img.Main.Bounds().Dy())
			}
			eg.main.WritePixels(img.Main.Pix)
		}
	default:
	}

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	screen.Fill(spec.Background)

	if eg.main != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(float64(eg.scale), float64(eg.scale))
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(eg.main, &op)
	}

	if eg.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", 4, 4)
	} else if eg.state == gui.StatePaused {
		ebitenutil.DebugPrintAt(screen, "HALTED", 4, 4)
	}
	if eg.sound {
		ebitenutil.DebugPrintAt(screen, "SOUND", 4, spec.Height*eg.scale-20)
	}

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	return spec.Width * eg.scale, spec.Height * eg.scale
}

func Launch(endGui chan bool, g *gui.GUI) error {
	eg := &guiEbiten{
		endGui: endGui,
		g:      g,
		state:  gui.StatePaused,
	}

	// wait for setup and a possible quit request
	select {
	case s := <-g.Setup:
		eg.scale = max(s.Scale, 1)
	case <-endGui:
		return nil
	}

	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.Width*eg.scale, spec.Height*eg.scale)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})
	eg.inputHandler = eg.inputSystem.NewHandler(0, keymap)

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		if !eg.geom.valid() {
			return
		}
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
			return
		}
	}()

	return ebiten.RunGame(eg)
}
