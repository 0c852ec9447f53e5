package game

import (
	"fmt"
	"math"
)

// hsvToRgb maps hue in degrees, saturation and value in [0,1] to 8-bit RGB.
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	sector := math.Mod(math.Mod(h, 360)+360, 360) / 60
	c := v * s
	x := c * (1 - math.Abs(math.Mod(sector, 2)-1))

	// channel order for each 60° sector of the wheel
	rgb := [6][3]float64{
		{c, x, 0}, {x, c, 0}, {0, c, x},
		{0, x, c}, {x, 0, c}, {c, 0, x},
	}[int(sector)%6]

	m := v - c
	to8 := func(f float64) uint8 { return uint8(math.Round((f + m) * 255)) }
	return to8(rgb[0]), to8(rgb[1]), to8(rgb[2])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatSeconds formats wave time as 0.000s
func formatSeconds(sec float64) string {
	return fmt.Sprintf("%.3fs", sec)
}
