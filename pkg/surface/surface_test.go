package surface_test

import (
	"image/color"
	"testing"

	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedRestoresOnPanic(t *testing.T) {
	rec := surface.NewRecorder()
	assert.Panics(t, func() {
		surface.Scoped(rec, func() {
			rec.Translate(10, 10)
			panic("boom")
		})
	})
	assert.Equal(t, 0, rec.Depth())
	assert.Equal(t, 1, rec.MaxDepth())

	rec.FillRect(0, 0, 1, 1)
	rects := rec.Filter(surface.OpFillRect)
	require.Len(t, rects, 1)
	assert.Equal(t, 0.0, rects[0].Transform.TX)
}

func TestRecorderTransform(t *testing.T) {
	rec := surface.NewRecorder()
	rec.Scale(2, 2)
	surface.Scoped(rec, func() {
		rec.Translate(10, 20)
		rec.SetFillColor(color.White)
		rec.FillText("hello", 5, 5, 0)
	})
	rec.FillText("after", 1, 1, 0)

	texts := rec.Filter(surface.OpFillText)
	require.Len(t, texts, 2)
	assert.Equal(t, layout.Point{X: 30, Y: 50}, texts[0].Transform.Apply(layout.Point{X: 5, Y: 5}))
	assert.Equal(t, color.White, texts[0].FillColor)
	assert.Equal(t, layout.Point{X: 2, Y: 2}, texts[1].Transform.Apply(layout.Point{X: 1, Y: 1}))
	assert.Equal(t, color.Black, texts[1].FillColor)
	assert.Equal(t, []string{"hello", "after"}, rec.Texts())
}

func TestRecorderPaths(t *testing.T) {
	rec := surface.NewRecorder()
	rec.BeginPath()
	rec.MoveTo(0, 0)
	rec.LineTo(10, 0)
	rec.LineTo(10, 10)
	rec.ClosePath()
	rec.MoveTo(20, 20)
	rec.LineTo(30, 30)
	rec.Fill()

	rec.BeginPath()
	rec.LineTo(1, 1)
	rec.Stroke()

	fills := rec.Filter(surface.OpFill)
	require.Len(t, fills, 1)
	require.Len(t, fills[0].Path, 2)
	assert.Len(t, fills[0].Path[0], 3)
	assert.Equal(t, []bool{true, false}, fills[0].Closed)

	strokes := rec.Filter(surface.OpStroke)
	require.Len(t, strokes, 1)
	assert.Equal(t, [][]layout.Point{{{X: 1, Y: 1}}}, strokes[0].Path)
}

func TestRecorderUnbalancedRestore(t *testing.T) {
	rec := surface.NewRecorder()
	rec.Restore()
	assert.Equal(t, 1, rec.Unbalanced())
	assert.Equal(t, 0, rec.Depth())
}

func TestTextAlignString(t *testing.T) {
	assert.Equal(t, "left", surface.AlignLeft.String())
	assert.Equal(t, "center", surface.AlignCenter.String())
	assert.Equal(t, "right", surface.AlignRight.String())
}
