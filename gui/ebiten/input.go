package ebiten

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/testchip8/gui"
	input "github.com/quasilyte/ebitengine-input"
)

// actions recognised by the input handler. the value of each action is the
// same as the gui action it produces
var actions = []gui.Action{
	gui.StickLeft, gui.StickUp, gui.StickRight, gui.StickDown, gui.StickButton,
	gui.Pause,
	gui.Key0, gui.Key1, gui.Key2, gui.Key3,
	gui.Key4, gui.Key5, gui.Key6, gui.Key7,
	gui.Key8, gui.Key9, gui.KeyA, gui.KeyB,
	gui.KeyC, gui.KeyD, gui.KeyE,
}

// the hex keys are arranged in the same four by four grid as the original
// keypad
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C          A 0 B
//
// space toggles the pause key, which is hex key F
var keymap = input.Keymap{
	input.Action(gui.StickLeft):   {input.KeyGamepadLeft, input.KeyLeft},
	input.Action(gui.StickUp):     {input.KeyGamepadUp, input.KeyUp},
	input.Action(gui.StickRight):  {input.KeyGamepadRight, input.KeyRight},
	input.Action(gui.StickDown):   {input.KeyGamepadDown, input.KeyDown},
	input.Action(gui.StickButton): {input.KeyGamepadA, input.KeyEnter},
	input.Action(gui.Pause):       {input.KeyGamepadStart, input.KeySpace},

	input.Action(gui.Key1): {input.Key1},
	input.Action(gui.Key2): {input.Key2},
	input.Action(gui.Key3): {input.Key3},
	input.Action(gui.KeyC): {input.Key4},
	input.Action(gui.Key4): {input.KeyQ},
	input.Action(gui.Key5): {input.KeyW},
	input.Action(gui.Key6): {input.KeyE},
	input.Action(gui.KeyD): {input.KeyR},
	input.Action(gui.Key7): {input.KeyA},
	input.Action(gui.Key8): {input.KeyS},
	input.Action(gui.Key9): {input.KeyD},
	input.Action(gui.KeyE): {input.KeyF},
	input.Action(gui.KeyA): {input.KeyZ},
	input.Action(gui.Key0): {input.KeyX},
	input.Action(gui.KeyB): {input.KeyC},
}

func (eg *guiEbiten) input() {
	eg.inputSystem.Update()

	for _, a := range actions {
		if eg.inputHandler.ActionIsJustPressed(input.Action(a)) {
			eg.pending = append(eg.pending, gui.Input{Action: a, Data: true})
		} else if eg.inputHandler.ActionIsJustReleased(input.Action(a)) {
			eg.pending = append(eg.pending, gui.Input{Action: a, Data: false})
		}
	}

	eg.pending = sendInput(eg.g.UserInput, eg.pending)
}

// sendInput sends as many of the pending inputs as the channel will accept
// and returns those that remain. events are sent in order and are never
// dropped, so a release cannot be lost while the emulation is not draining
// the channel
func sendInput(ch chan<- gui.Input, pending []gui.Input) []gui.Input {
	for i, inp := range pending {
		select {
		case ch <- inp:
		default:
			return append(pending[:0], pending[i:]...)
		}
	}
	return pending[:0]
}

func (eg *guiEbiten) inputKeyboard() error {
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (eg *guiEbiten) inputDragAndDrop() error {
	df := ebiten.DroppedFiles()
	if df != nil {
		f := fmt.Sprintf("%#v", df)
		s := strings.Split(f, "\"")
		if len(s) > 1 {
			select {
			case eg.g.Commands <- []string{"LOAD", s[1]}:
			default:
				return fmt.Errorf("dropped file ignored: %s", s[1])
			}
		}
	}
	return nil
}
