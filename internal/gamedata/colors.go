package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB", "RRGGBB" or the short "#RGB" form to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits, err := expandHex(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}

	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// NormalizeHex returns hex in "#RRGGBB" form.
func NormalizeHex(hex string) (string, error) {
	digits, err := expandHex(hex)
	if err != nil {
		return "", err
	}
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return "", fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return "#" + strings.ToUpper(digits), nil
}

func expandHex(hex string) (string, error) {
	digits := strings.TrimPrefix(hex, "#")
	switch len(digits) {
	case 6:
		return digits, nil
	case 3:
		return string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]}), nil
	default:
		return "", fmt.Errorf("invalid hex color length: %q", hex)
	}
}
