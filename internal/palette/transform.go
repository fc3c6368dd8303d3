package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"repalette/internal/catppuccin"
	"repalette/internal/util"
)

// HSLuv channel indices. Hue is in degrees [0,360]; saturation and
// lightness are fractions [0,1].
const (
	chanHue = iota
	chanSaturation
	chanLightness
)

// channelIndex resolves a rule's variable to an HSLuv channel. The full
// channel names and their single-letter forms are both accepted.
func channelIndex(variable string) (int, error) {
	switch variable {
	case "hue", "h":
		return chanHue, nil
	case "saturation", "s":
		return chanSaturation, nil
	case "lightness", "l":
		return chanLightness, nil
	default:
		return 0, fmt.Errorf("%w: %q", util.ErrUnknownChannel, variable)
	}
}

// Transform runs the edits in order over one dataset color and returns
// the resulting hex. Later edits see channel values left by earlier ones.
// A color no edit matches passes through untouched: the returned string
// is the exact input hex, not a converted round trip.
func Transform(c catppuccin.Color, edits []Edit) (string, error) {
	col, err := colorful.Hex(c.Hex)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", c.Hex, err)
	}

	var ch [3]float64
	ch[chanHue], ch[chanSaturation], ch[chanLightness] = col.HSLuv()

	touched := false
	for _, e := range edits {
		if !e.Matches(c.Name, c.Identifier, c.Accent) {
			continue
		}
		i, err := channelIndex(e.Variable)
		if err != nil {
			return "", err
		}
		next, err := e.Apply(ch[i])
		if err != nil {
			return "", err
		}
		ch[i] = next
		touched = true
	}

	if !touched {
		return c.Hex, nil
	}

	out := colorful.HSLuv(ch[chanHue], ch[chanSaturation], ch[chanLightness])
	return out.Clamped().Hex(), nil
}
