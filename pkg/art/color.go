package art

// Remap maps value from [inStart, inEnd] to the same relative position in
// [outStart, outEnd]. Values outside the input interval extrapolate linearly.
// It panics if the input interval is empty.
func Remap(value, inStart, inEnd, outStart, outEnd float64) float64 {
	if inEnd == inStart {
		panic("art: remap from an empty interval")
	}
	fraction := (inEnd - value) / (inEnd - inStart)
	return outEnd - fraction*(outEnd-outStart)
}

// ColorMap maps a value in [-1, 1] to a color intensity in [0, 255],
// truncating toward zero.
func ColorMap(value float64) uint8 {
	return uint8(int(Remap(value, -1, 1, 0, 255)))
}
