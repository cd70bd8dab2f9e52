package cryptodash

import (
	"math/rand/v2"
	"strings"
	"time"
)

// SparklineLen is the number of samples in a generated sparkline.
const SparklineLen = 24

// sparklineStep is the width of the uniform relative step, centered on 0.
const sparklineStep = 0.05

var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// NewRand returns a random source for the synthetic data. A zero seed picks a
// time based one.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1))
}

// GenerateSparkline returns SparklineLen samples of a multiplicative random
// walk starting at base: each sample is the previous one times 1+U, U uniform
// in [-2.5%, 2.5%).
func GenerateSparkline(base float64, rng *rand.Rand) []float64 {
	points := make([]float64, 0, SparklineLen)
	price := base
	for range SparklineLen {
		price *= 1 + (rng.Float64()-0.5)*sparklineStep
		points = append(points, price)
	}
	return points
}

// Glyphs renders samples as a line of block characters scaled between their
// minimum and maximum.
func Glyphs(samples []float64) string {
	if len(samples) == 0 {
		return ""
	}
	lo, hi := samples[0], samples[0]
	for _, s := range samples {
		lo, hi = min(lo, s), max(hi, s)
	}
	var b strings.Builder
	top := len(sparkGlyphs) - 1
	for _, s := range samples {
		i := top / 2
		if hi > lo {
			i = int((s - lo) / (hi - lo) * float64(top))
		}
		b.WriteRune(sparkGlyphs[i])
	}
	return b.String()
}

// bar renders a horizontal bar of width cells filled in proportion to frac.
func bar(frac float64, width int) string {
	if !finite(frac) || frac < 0 {
		frac = 0
	}
	n := int(frac*float64(width) + 0.5)
	n = min(n, width)
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}
