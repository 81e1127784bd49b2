package chronogram

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarconf/internal/config"
)

func TestFoldSingleWindowInsidePeriod(t *testing.T) {
	tl, err := Fold([]Window{{Name: "TX", Start: 0, Duration: 10, Height: 1}}, 100)
	require.NoError(t, err)

	require.Equal(t, 1, tl.Replicas)
	require.Len(t, tl.Instances, 1)
	in := tl.Instances[0]
	assert.Equal(t, "TX", in.Label)
	assert.Equal(t, uint(0), in.Replica)
	assert.Equal(t, 0.0, in.Start)
	assert.Equal(t, 10.0, in.End())
	assert.Equal(t, 100.0, tl.Span())
}

func TestFoldWindowCrossingPeriod(t *testing.T) {
	tl, err := Fold([]Window{{Name: "X", Start: 90, Duration: 20}}, 100)
	require.NoError(t, err)

	require.Equal(t, 3, tl.Replicas)
	require.Len(t, tl.Instances, 3)

	wantStarts := []float64{90, 190, 290}
	wantLabels := []string{"X", "X (Ambiguity 1)", "X (Ambiguity 2)"}
	for i, in := range tl.Instances {
		assert.InDelta(t, wantStarts[i], in.Start, 1e-9)
		assert.Equal(t, 20.0, in.Duration)
		assert.Equal(t, wantLabels[i], in.Label)
		assert.Equal(t, "X", in.Name, "base name is kept on every replica")
		assert.Equal(t, uint(i), in.Replica)
	}
	assert.Equal(t, 300.0, tl.Span())
}

func TestFoldInvalidPeriod(t *testing.T) {
	windows := []Window{{Name: "TX", Duration: 10}}
	for _, p := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		tl, err := Fold(windows, p)
		require.ErrorIs(t, err, ErrInvalidPeriod, "period %v", p)
		assert.Empty(t, tl.Instances)
		assert.Zero(t, tl.Replicas)
	}
}

func TestFoldEmpty(t *testing.T) {
	tl, err := Fold(nil, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, tl.Replicas)
	assert.Empty(t, tl.Instances)
}

func TestFoldDegenerateDurations(t *testing.T) {
	tl, err := Fold([]Window{
		{Name: "zero", Start: 5, Duration: 0},
		{Name: "negative", Start: 50, Duration: -20},
	}, 100)
	require.NoError(t, err)
	require.Len(t, tl.Instances, 2)
	assert.Equal(t, 5.0, tl.Instances[0].End())
	assert.Equal(t, 30.0, tl.Instances[1].End())
}

func TestFoldBoundaryEnd(t *testing.T) {
	// An end exactly on the span does not extend it.
	tl, err := Fold([]Window{{Name: "edge", Start: 90, Duration: 10}}, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, tl.Replicas)

	// Just past it adds the spare period.
	tl, err = Fold([]Window{{Name: "edge", Start: 90, Duration: 10.5}}, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, tl.Replicas)
}

func TestFoldGroupsReplicasByWindow(t *testing.T) {
	tl, err := Fold([]Window{
		{Name: "A", Start: 0, Duration: 10},
		{Name: "B", Start: 150, Duration: 10},
		{Name: "C", Start: 20, Duration: 5},
	}, 100)
	require.NoError(t, err)
	require.Equal(t, 3, tl.Replicas)

	var names []string
	for _, in := range tl.Instances {
		names = append(names, in.Name)
	}
	assert.Equal(t, []string{"A", "A", "A", "B", "B", "B", "C", "C", "C"}, names)
}

func TestFoldCoversEveryEnd(t *testing.T) {
	tests := []struct {
		name    string
		windows []Window
		period  float64
	}{
		{"single short", []Window{{Start: 0, Duration: 1}}, 10},
		{"long window", []Window{{Start: 3, Duration: 250}}, 7},
		{"mixed", []Window{{Start: 24, Duration: 21}, {Start: 15, Duration: 3}, {Start: 20.01, Duration: 10}}, 30},
		{"late start", []Window{{Start: 999.5, Duration: 0.5}}, 1},
		{"fractional period", []Window{{Start: 0.3, Duration: 0.9}}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl, err := Fold(tt.windows, tt.period)
			require.NoError(t, err)
			for _, w := range tt.windows {
				assert.GreaterOrEqual(t, w.End(), 0.0)
				assert.LessOrEqual(t, w.End(), tl.Span())
			}
			assert.Len(t, tl.Instances, len(tt.windows)*tl.Replicas)
		})
	}
}

func TestFoldDeterministic(t *testing.T) {
	windows := []Window{
		{Name: "TX", Start: 0, Duration: 10, Height: 1},
		{Name: "RX", Start: 24, Duration: 91, Height: 1, Dashed: true},
	}
	first, err := Fold(windows, 100)
	require.NoError(t, err)
	second, err := Fold(windows, 100)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Fold not deterministic (-first +second):\n%s", diff)
	}
}

func TestReplicaCountMonotonic(t *testing.T) {
	const period = 40.0
	prev := 0
	for d := 0.0; d <= 400; d += 3.5 {
		n, _, err := ReplicaCount([]Window{{Start: 12, Duration: d}}, period)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, prev, "duration %v", d)
		prev = n
	}

	prev = 0
	for s := 0.0; s <= 400; s += 7.25 {
		n, _, err := ReplicaCount([]Window{{Start: s, Duration: 5}}, period)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, prev, "start %v", s)
		prev = n
	}
}

func TestReplicaCountIgnoresNonFiniteEnds(t *testing.T) {
	n, truncated, err := ReplicaCount([]Window{
		{Start: math.Inf(1), Duration: 1},
		{Start: 0, Duration: math.NaN()},
	}, 10)
	require.NoError(t, err)
	assert.False(t, truncated)
	assert.Equal(t, 1, n)
}

func TestFoldTruncatesRunawayReplicaCount(t *testing.T) {
	tl, err := Fold([]Window{{Name: "far", Start: 1e12, Duration: 1}}, 1)
	require.NoError(t, err)
	assert.True(t, tl.Truncated)
	assert.Equal(t, config.MaxReplicas, tl.Replicas)
	assert.Len(t, tl.Instances, config.MaxReplicas)
}

func TestInstanceOutlineAndAlpha(t *testing.T) {
	tl, err := Fold([]Window{{Name: "RX", Start: 90, Duration: 20, Height: 0.8}}, 100)
	require.NoError(t, err)

	second := tl.Instances[1]
	out := second.Outline()
	require.Equal(t, 4, out.Len())
	want := [][2]float64{{190, 0}, {190, 0.8}, {210, 0.8}, {210, 0}}
	for i := range want {
		x, y := out.XY(i)
		assert.InDelta(t, want[i][0], x, 1e-9)
		assert.InDelta(t, want[i][1], y, 1e-9)
	}

	assert.InDelta(t, 0.6, tl.Instances[0].Alpha(), 1e-12)
	assert.InDelta(t, 0.3, second.Alpha(), 1e-12)
	assert.InDelta(t, 0.2, tl.Instances[2].Alpha(), 1e-12)
}
