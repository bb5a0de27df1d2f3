package nftModels

import (
	"encoding/hex"
	"fmt"

	"github.com/wanderers-nft/nft-metadata/types"
)

// RGB is an 8-bit-per-channel color. It deliberately carries no JSON behavior
// of its own; background_color is the only field the hex transform applies to,
// and the codec invokes parseHexColor/formatHexColor explicitly there.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// parseHexColor decodes a bare rrggbb string, no leading marker, any case.
// Anything that does not decode to exactly three bytes is rejected.
func parseHexColor(raw string) (RGB, error) {
	decoded, err := hex.DecodeString(raw)
	if err != nil || len(decoded) != 3 {
		return RGB{}, &types.ColorFormatError{Raw: raw}
	}
	return RGB{R: decoded[0], G: decoded[1], B: decoded[2]}, nil
}

// formatHexColor emits exactly six lowercase hex digits.
func formatHexColor(c RGB) string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}
