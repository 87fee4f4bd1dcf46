package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color stored as 0xRRGGBB
type Color uint32

// Black is the "no emission" color
const Black Color = 0x000000

// ColorMask limits a color to 24 bits
const ColorMask Color = 0xFFFFFF

// RGB splits the color into its 8-bit channels
func (c Color) RGB() (r, g, b uint8) {
	c &= ColorMask
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Add returns the per-channel saturated sum of two colors
func (c Color) Add(other Color) Color {
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := other.RGB()
	return NewColor(satAdd(r1, r2), satAdd(g1, g2), satAdd(b1, b2))
}

func satAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 0xFF {
		return 0xFF
	}
	return uint8(sum)
}

// NewColor builds a color from 8-bit channels
func NewColor(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// String formats the color as #rrggbb
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c&ColorMask))
}

// MarshalText implements encoding.TextMarshaler so colors read naturally in config files
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts "#rrggbb", "0xrrggbb" or "rrggbb"
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 6 {
		return fmt.Errorf("invalid color %q: expected 6 hex digits", string(text))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", string(text), err)
	}
	*c = Color(v)
	return nil
}
