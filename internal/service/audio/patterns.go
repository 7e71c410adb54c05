package audio

import (
	"errors"
	"math"
)

const (
	WindowSize = 100

	loudThreshold  = 0.8
	quietThreshold = 0.1
	peakThreshold  = 0.6
	peakRunLength  = 5

	ObservationLoud       = "High volume detected - possible loud event"
	ObservationQuiet      = "Very quiet - possible silence or ambient noise"
	ObservationRepetitive = "Repetitive pattern detected - possible machinery or rhythmic sounds"
)

var ErrInvalidInput = errors.New("invalid input: empty sample sequence")

// DetectPatterns reports qualitative observations about normalized samples.
// An empty sequence has no defined loudness and returns ErrInvalidInput.
func DetectPatterns(samples []float32) ([]string, error) {
	if len(samples) == 0 {
		return nil, ErrInvalidInput
	}

	var observations []string

	avg := averageAmplitude(samples)
	if avg > loudThreshold {
		observations = append(observations, ObservationLoud)
	} else if avg < quietThreshold {
		observations = append(observations, ObservationQuiet)
	}

	if hasPeakRun(samples) {
		observations = append(observations, ObservationRepetitive)
	}

	return observations, nil
}

func averageAmplitude(samples []float32) float64 {
	var sum float64
	for _, s := range samples {
		sum += math.Abs(float64(s))
	}
	return sum / float64(len(samples))
}

// hasPeakRun scans successive full windows and stops at the first run of
// more than peakRunLength loud windows. A trailing partial window is ignored.
func hasPeakRun(samples []float32) bool {
	consecutive := 0
	for start := 0; start+WindowSize <= len(samples); start += WindowSize {
		if peak(samples[start:start+WindowSize]) > peakThreshold {
			consecutive++
		} else {
			consecutive = 0
		}
		if consecutive > peakRunLength {
			return true
		}
	}
	return false
}

func peak(window []float32) float64 {
	var m float64
	for _, s := range window {
		m = math.Max(m, math.Abs(float64(s)))
	}
	return m
}
