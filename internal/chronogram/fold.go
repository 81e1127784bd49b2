package chronogram

import (
	"errors"
	"math"

	"sarconf/internal/config"
)

// ErrInvalidPeriod is returned when the repetition period is not a finite
// positive number.
var ErrInvalidPeriod = errors.New("chronogram: repetition period must be finite and > 0")

// Timeline is the result of folding a window list over one repetition period.
type Timeline struct {
	Period    float64
	Replicas  int
	Instances []Instance
	Truncated bool // Replicas hit config.MaxReplicas
}

// Span is the visible extent of the timeline, Period * Replicas.
func (t Timeline) Span() float64 {
	return t.Period * float64(t.Replicas)
}

// ReplicaCount returns how many periods must be shown so that every window
// end stays inside the visible span. Whenever a window ends past the current
// span the count becomes ceil(end/period)+1, which always leaves one spare
// period after the furthest end. Non-finite ends are ignored.
func ReplicaCount(windows []Window, period float64) (count int, truncated bool, err error) {
	if !validPeriod(period) {
		return 0, false, ErrInvalidPeriod
	}

	count = 1
	for _, w := range windows {
		end := w.End()
		if math.IsNaN(end) || math.IsInf(end, 0) {
			continue
		}
		if end <= float64(count)*period {
			continue
		}
		n := math.Ceil(end/period) + 1
		if n > config.MaxReplicas {
			return config.MaxReplicas, true, nil
		}
		count = int(n)
	}
	return count, false, nil
}

// Fold replicates every window once per period of the visible span.
// Replicas of a window are grouped together and windows keep their input
// order. Windows with a non-positive duration are folded as-is.
func Fold(windows []Window, period float64) (Timeline, error) {
	count, truncated, err := ReplicaCount(windows, period)
	if err != nil {
		return Timeline{}, err
	}

	instances := make([]Instance, 0, len(windows)*count)
	for _, w := range windows {
		for i := 0; i < count; i++ {
			shifted := w
			shifted.Start = w.Start + float64(i)*period
			instances = append(instances, Instance{
				Window:  shifted,
				Replica: uint(i),
				Label:   replicaLabel(w.Name, uint(i)),
			})
		}
	}

	return Timeline{
		Period:    period,
		Replicas:  count,
		Instances: instances,
		Truncated: truncated,
	}, nil
}

func validPeriod(p float64) bool {
	return p > 0 && !math.IsInf(p, 1)
}
