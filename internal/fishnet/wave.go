package fishnet

import "math"

// Wave field constants. The surface is a sum of two terms: a traveling
// sine driven by position and time, and a standing cosine ripple.
const (
	waveFreq1 = 0.3
	waveFreq2 = 0.2
	waveAmp1  = 1.0
	waveAmp2  = 0.5
)

// Depth returns the net's z displacement at world position (x, y) and
// elapsed time t. Every strand uses this same formula on every frame.
func Depth(x, y, t float64) float64 {
	return math.Sin(x*waveFreq1+y*waveFreq1+t)*waveAmp1 +
		math.Cos((x+y)*waveFreq2)*waveAmp2
}

// rowDepth is the construction-time depth for horizontal strands. The
// first term is driven by the lattice indices rather than world
// coordinates, unlike Depth. Kept as found: the first rendered frame
// differs from all later ones, which overwrite z via Depth.
func rowDepth(i, j int, x, y float64) float64 {
	return math.Sin(float64(j)*waveFreq1+float64(i)*waveFreq1)*waveAmp1 +
		math.Cos((x+y)*waveFreq2)*waveAmp2
}

// colDepth is the construction-time depth for vertical strands, with
// the sin/cos roles of rowDepth swapped. Also kept as found.
func colDepth(i, j int, x, y float64) float64 {
	return math.Cos(float64(j)*waveFreq1+float64(i)*waveFreq1)*waveAmp1 +
		math.Sin((x+y)*waveFreq2)*waveAmp2
}
