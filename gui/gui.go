package gui

import "image"

// State of the emulation as it concerns the GUI
type State int

// List of possible states
const (
	StateRunning State = iota
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

// Image is sent from the emulation to the GUI once per frame
type Image struct {
	Main *image.RGBA

	// the pause key of the keypad is held. the emulation is not executing
	// instructions but is still producing frames
	Paused bool

	// the sound timer is non-zero
	Sound bool
}

// Setup is sent by the debugger once, before the emulation starts
type Setup struct {
	// size of each display pixel in the window
	Scale int
}

// GUI is the collection of channels used to communicate between the
// emulation and the GUI implementation
type GUI struct {
	// images from the emulation. the GUI should display the most recent image
	SetImage chan Image

	// input events from the GUI to the emulation
	UserInput chan Input

	// changes of emulation state. sent by the debugger
	State chan State

	// commands for the debugger. for example, a program file dropped onto the
	// window is sent as a LOAD command
	Commands chan []string

	// window setup. the GUI should not open a window until setup is received
	Setup chan Setup
}

// NewGUI creates a GUI with all channels ready for use
func NewGUI() *GUI {
	return &GUI{
		SetImage:  make(chan Image, 1),
		UserInput: make(chan Input, 16),
		State:     make(chan State, 1),
		Commands:  make(chan []string, 1),
		Setup:     make(chan Setup, 1),
	}
}

// SendImage to the GUI. If an image is already waiting it is replaced
func (g *GUI) SendImage(img Image) {
	select {
	case g.SetImage <- img:
		return
	default:
	}

	// discard the stale image and try again. it doesn't matter if the GUI has
	// taken the image in the meantime
	select {
	case <-g.SetImage:
	default:
	}

	select {
	case g.SetImage <- img:
	default:
	}
}

// SendState to the GUI. If a state change is already waiting it is replaced
func (g *GUI) SendState(s State) {
	select {
	case g.State <- s:
		return
	default:
	}

	select {
	case <-g.State:
	default:
	}

	select {
	case g.State <- s:
	default:
	}
}
