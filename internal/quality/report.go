package quality

// Band classifies a quality value for reporting.
type Band string

const (
	BandStandard Band = "standard"
	BandHigh     Band = "high"  // >= 0.99
	BandRare     Band = "rare"  // >= 0.9951
	BandUltra    Band = "ultra" // >= 0.999
)

// Classify returns the highest band q reaches.
func Classify(q float64) Band {
	switch {
	case q >= ThresholdUltra:
		return BandUltra
	case q >= ThresholdRare:
		return BandRare
	case q >= ThresholdHigh:
		return BandHigh
	default:
		return BandStandard
	}
}

// Report summarises a batch of samples.
type Report struct {
	Samples int          `json:"samples"`
	Mean    float64      `json:"mean"`
	Min     float64      `json:"min"`
	Max     float64      `json:"max"`
	Counts  map[Band]int `json:"counts"`
	// AtLeastHigh counts samples >= 0.99, i.e. every non-standard band.
	AtLeastHigh int `json:"at_least_high"`
}

// Fraction returns the share of samples in band b.
func (r Report) Fraction(b Band) float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Counts[b]) / float64(r.Samples)
}

// HighFraction returns the share of samples >= 0.99.
func (r Report) HighFraction() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.AtLeastHigh) / float64(r.Samples)
}

// Summarize draws n samples from s and aggregates them.
func Summarize(s Sampler, n int) Report {
	r := Report{Counts: make(map[Band]int)}
	if n <= 0 {
		return r
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		q := s.Sample()
		if i == 0 || q < r.Min {
			r.Min = q
		}
		if q > r.Max {
			r.Max = q
		}
		sum += q
		band := Classify(q)
		r.Counts[band]++
		if band != BandStandard {
			r.AtLeastHigh++
		}
	}
	r.Samples = n
	r.Mean = sum / float64(n)
	return r
}
