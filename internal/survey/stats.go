package survey

import "math"

// Stats summarizes a sampled quantity over a survey. Non-finite samples
// (the r = 0 singularity) are skipped so one coincident point does not
// poison the summary.
type Stats struct {
	Min, Max  float64
	Mean, RMS float64
	Count     int
}

func Summarize(values []float64) Stats {
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	sumSq := 0.0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
		sumSq += v * v
		s.Count++
	}
	if s.Count == 0 {
		return Stats{}
	}
	s.Mean = sum / float64(s.Count)
	s.RMS = math.Sqrt(sumSq / float64(s.Count))
	return s
}

// Map returns the summary as a flat name->value map for run metadata.
func (s Stats) Map(prefix string) map[string]float64 {
	return map[string]float64{
		prefix + "_min":  s.Min,
		prefix + "_max":  s.Max,
		prefix + "_mean": s.Mean,
		prefix + "_rms":  s.RMS,
	}
}
