package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/testchip8/hardware/spec"
)

// parseAddress accepts addresses in the form $0200, 0x200 or 512. The address
// must be inside the address space
func parseAddress(address string) (uint16, error) {
	a := address
	if strings.HasPrefix(a, "$") {
		a = fmt.Sprintf("0x%s", a[1:])
	}

	v, err := strconv.ParseUint(a, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("address is not valid: %s", address)
	}

	if v >= spec.MemorySize {
		return 0, fmt.Errorf("address is outside memory: %s", address)
	}

	return uint16(v), nil
}

// parseValue accepts an 8-bit value in the same forms as parseAddress
func parseValue(value string) (uint8, error) {
	a := value
	if strings.HasPrefix(a, "$") {
		a = fmt.Sprintf("0x%s", a[1:])
	}

	v, err := strconv.ParseUint(a, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("value is not valid: %s", value)
	}

	return uint8(v), nil
}
