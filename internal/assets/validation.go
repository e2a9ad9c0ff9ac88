package assets

import (
	"fmt"
	"strings"
)

// maxAssetNameLength bounds theme names to something sane.
const maxAssetNameLength = 64

// ValidateAssetName rejects names that could escape the embedded
// directory or that are obviously malformed.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: name too long (%d chars)", ErrInvalidAssetName, len(name))
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
