//go:build !release

package resources

const configDir = ".testchip8"

func resourcePath() (string, error) {
	return configDir, nil
}
