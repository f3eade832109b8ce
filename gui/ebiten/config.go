package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/testchip8/resources"
)

// window geometry is stored as four integers: x, y, width and height
func parseGeometry(s string) (windowGeometry, error) {
	var geom windowGeometry
	_, err := fmt.Sscanf(s, "%d %d %d %d", &geom.x, &geom.y, &geom.w, &geom.h)
	if err != nil {
		return windowGeometry{x: -1}, fmt.Errorf("window geometry: %w", err)
	}
	if !geom.valid() {
		return windowGeometry{x: -1}, fmt.Errorf("window geometry: invalid: %s", s)
	}
	return geom, nil
}

func onWindowOpen() (windowGeometry, error) {
	s, err := resources.Read("window")
	if err != nil {
		return windowGeometry{x: -1}, err
	}

	// no stored geometry
	if s == "" {
		return windowGeometry{x: -1}, nil
	}

	geom, err := parseGeometry(s)
	if err != nil {
		return geom, err
	}

	ebiten.SetWindowPosition(geom.x, geom.y)
	ebiten.SetWindowSize(geom.w, geom.h)

	return geom, nil
}

func onWindowClose(geom windowGeometry) error {
	s := fmt.Sprintf("%d %d %d %d", geom.x, geom.y, geom.w, geom.h)
	return resources.Write("window", s)
}
