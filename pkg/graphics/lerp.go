package graphics

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b Offset, t float64) Offset {
	return Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpColor linearly interpolates between two Color values per channel.
func LerpColor(a, b Color, t float64) Color {
	aR := float64((a >> 16) & 0xFF)
	aG := float64((a >> 8) & 0xFF)
	aB := float64(a & 0xFF)
	aA := float64((a >> 24) & 0xFF)

	bR := float64((b >> 16) & 0xFF)
	bG := float64((b >> 8) & 0xFF)
	bB := float64(b & 0xFF)
	bA := float64((b >> 24) & 0xFF)

	r := uint8(LerpFloat64(aR, bR, t))
	g := uint8(LerpFloat64(aG, bG, t))
	b8 := uint8(LerpFloat64(aB, bB, t))
	alpha := uint8(LerpFloat64(aA, bA, t))

	return Color(uint32(alpha)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b8))
}
