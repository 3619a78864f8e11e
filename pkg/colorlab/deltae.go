package colorlab

import "math"

// Metric selects a perceptual color difference formula.
type Metric int

const (
	// MetricCIE76 is plain Euclidean distance in L*a*b*.
	MetricCIE76 Metric = iota
	// MetricCIE94 is the CIE94 formula with textile weighting.
	MetricCIE94
	// MetricCMC is the CMC l:c formula with l=2, c=1 (acceptability).
	MetricCMC
)

func (m Metric) String() string {
	switch m {
	case MetricCIE76:
		return "cie76"
	case MetricCIE94:
		return "cie94"
	case MetricCMC:
		return "cmc"
	default:
		return "unknown"
	}
}

// Distance computes the color difference between two LAB colors using the
// selected metric. Unknown metrics fall back to CIE76.
func Distance(a, b LAB, m Metric) float64 {
	switch m {
	case MetricCIE94:
		return DeltaE94(a, b)
	case MetricCMC:
		return DeltaECMC(a, b)
	default:
		return DeltaE76(a, b)
	}
}

// DeltaE76 returns the CIE76 color difference: Euclidean distance in L*a*b*.
func DeltaE76(c1, c2 LAB) float64 {
	dL := c1.L - c2.L
	dA := c1.A - c2.A
	dB := c1.B - c2.B
	return math.Sqrt(dL*dL + dA*dA + dB*dB)
}

// CIE94 textile weights.
const (
	cie94KL = 2.0
	cie94K1 = 0.048
	cie94K2 = 0.014
)

// DeltaE94 returns the CIE94 color difference with textile constants
// (kL=2, K1=0.048, K2=0.014), appropriate for thread color comparison.
func DeltaE94(c1, c2 LAB) float64 {
	dL := c1.L - c2.L
	c1ab := math.Sqrt(c1.A*c1.A + c1.B*c1.B)
	c2ab := math.Sqrt(c2.A*c2.A + c2.B*c2.B)
	dC := c1ab - c2ab

	dA := c1.A - c2.A
	dB := c1.B - c2.B
	dH2 := dA*dA + dB*dB - dC*dC
	if dH2 < 0 {
		dH2 = 0
	}

	sL := 1.0
	sC := 1.0 + cie94K1*c1ab
	sH := 1.0 + cie94K2*c1ab

	termL := dL / (cie94KL * sL)
	termC := dC / sC
	termH := math.Sqrt(dH2) / sH

	return math.Sqrt(termL*termL + termC*termC + termH*termH)
}

// CMC l:c ratio. l=2, c=1 is the standard acceptability tuning.
const (
	cmcL = 2.0
	cmcC = 1.0
)

// DeltaECMC returns the CMC(2:1) color difference. The lightness weight is
// special-cased below L=16, and the hue weight depends on the hue angle of
// the reference color.
func DeltaECMC(c1, c2 LAB) float64 {
	dL := c1.L - c2.L
	c1ab := math.Sqrt(c1.A*c1.A + c1.B*c1.B)
	c2ab := math.Sqrt(c2.A*c2.A + c2.B*c2.B)
	dC := c1ab - c2ab

	dA := c1.A - c2.A
	dB := c1.B - c2.B
	dH2 := dA*dA + dB*dB - dC*dC
	if dH2 < 0 {
		dH2 = 0
	}

	var sL float64
	if c1.L < 16 {
		sL = 0.511
	} else {
		sL = 0.040975 * c1.L / (1.0 + 0.01765*c1.L)
	}

	sC := 0.0638*c1ab/(1.0+0.0131*c1ab) + 0.638

	h1 := math.Atan2(c1.B, c1.A) * 180.0 / math.Pi
	if h1 < 0 {
		h1 += 360
	}

	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos((h1+168)*math.Pi/180.0))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos((h1+35)*math.Pi/180.0))
	}

	c1ab4 := c1ab * c1ab * c1ab * c1ab
	f := math.Sqrt(c1ab4 / (c1ab4 + 1900.0))
	sH := sC * (f*t + 1.0 - f)

	termL := dL / (cmcL * sL)
	termC := dC / (cmcC * sC)
	termH := math.Sqrt(dH2) / sH

	return math.Sqrt(termL*termL + termC*termC + termH*termH)
}
