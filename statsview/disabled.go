//go:build !statsview

package statsview

import "io"

// Launch does nothing in builds without the statsview constraint
func Launch(_ io.Writer) {
}

// Available returns false in builds without the statsview constraint
func Available() bool {
	return false
}
