package plotting

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarconf/internal/chronogram"
	"sarconf/internal/monitoring"
	"sarconf/internal/sar"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

func TestChronogramAxisCoversSpan(t *testing.T) {
	tl, err := chronogram.Fold([]chronogram.Window{{Name: "X", Start: 90, Duration: 20, Height: 1}}, 100)
	require.NoError(t, err)

	p, err := Chronogram(tl)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.X.Min)
	// The last replica may run past the span; the axis never ends before it.
	assert.GreaterOrEqual(t, p.X.Max, 300.0)
	assert.Equal(t, "Chronogram", p.Title.Text)
}

func TestGeometryPlotRange(t *testing.T) {
	p, err := Geometry(sar.Default().Primitives())
	require.NoError(t, err)
	assert.Equal(t, "Geometry", p.Title.Text)
	assert.InDelta(t, 0.0, p.Y.Min, 1e-6)
	assert.InDelta(t, 3000.0, p.Y.Max, 1e-6)
	assert.Greater(t, p.X.Max, 3000.0)
}

func TestGeometryRejectsNonFinitePoints(t *testing.T) {
	p := sar.Default()
	p.Height = math.Inf(1)
	_, err := Geometry(p.Primitives())
	require.Error(t, err)
}

func TestExportWritesBothDiagrams(t *testing.T) {
	for _, format := range []string{"png", "svg"} {
		t.Run(format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			files, err := Export(dir, format, sar.Default())
			require.NoError(t, err)
			require.Len(t, files, 2)
			assert.Equal(t, filepath.Join(dir, "chronogram."+format), files[0])
			assert.Equal(t, filepath.Join(dir, "geometry."+format), files[1])
			for _, f := range files {
				info, err := os.Stat(f)
				require.NoError(t, err)
				assert.Greater(t, info.Size(), int64(0))
			}
		})
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, err := Export(t.TempDir(), "bmp", sar.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestExportInvalidPeriod(t *testing.T) {
	p := sar.Default()
	p.PRI = 0
	_, err := Export(t.TempDir(), "png", p)
	require.ErrorIs(t, err, chronogram.ErrInvalidPeriod)
}

func TestWithAlpha(t *testing.T) {
	c := withAlpha(color.RGBA{R: 255, A: 255}, 0.5)
	assert.Equal(t, color.NRGBA{R: 255, A: 127}, c)

	assert.Equal(t, color.NRGBA{A: 255}, withAlpha(nil, 1))
	assert.Equal(t, color.Gray{Y: 96}, visibleOnWhite(color.White))
}
