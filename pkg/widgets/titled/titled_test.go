package titled_test

import (
	"testing"

	"github.com/roffe/scadaplayer/pkg/colors"
	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/roffe/scadaplayer/pkg/widgets/titled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spy struct {
	updates  int
	index    int
	current  logfile.Record
	drawSize layout.Size
	origin   layout.Point
	depth    int
	panics   bool
}

func (w *spy) Update(_ *logfile.Metadata, _ logfile.Records, index int, current logfile.Record) {
	w.updates++
	w.index = index
	w.current = current
}

func (w *spy) Draw(s surface.Surface, size layout.Size) {
	w.drawSize = size
	rec := s.(*surface.Recorder)
	w.depth = rec.Depth()
	rec.FillRect(0, 0, 1, 1)
	ops := rec.Filter(surface.OpFillRect)
	w.origin = ops[len(ops)-1].Transform.Apply(layout.Point{})
	if w.panics {
		panic("inner draw failed")
	}
}

func TestUpdateDelegates(t *testing.T) {
	inner := &spy{}
	w := titled.New("Wind speed", inner)
	w.Update(nil, nil, 7, logfile.Record{WindSpeed: 3})
	assert.Equal(t, 1, inner.updates)
	assert.Equal(t, 7, inner.index)
	assert.Equal(t, 3.0, inner.current.WindSpeed)
}

func TestDraw(t *testing.T) {
	inner := &spy{}
	w := titled.New("Wind speed", inner)
	rec := surface.NewRecorder()
	w.Draw(rec, layout.NewSize(320, 270))

	rects := rec.Filter(surface.OpFillRect)
	require.NotEmpty(t, rects)
	assert.Equal(t, colors.Background, rects[0].FillColor)
	assert.Equal(t, 320.0, rects[0].W)
	assert.Equal(t, 270.0, rects[0].H)

	texts := rec.Filter(surface.OpFillText)
	require.Len(t, texts, 1)
	assert.Equal(t, "WIND SPEED", texts[0].Text)
	assert.Equal(t, 160.0, texts[0].X)
	assert.Equal(t, 15.0, texts[0].Y)
	assert.Equal(t, surface.AlignCenter, texts[0].Align)
	assert.True(t, texts[0].Font.Bold)

	strokes := rec.Filter(surface.OpStroke)
	require.Len(t, strokes, 1)
	require.Len(t, strokes[0].Path, 2)
	assert.Equal(t, []bool{true, false}, strokes[0].Closed)
	assert.Equal(t, []layout.Point{{X: 0, Y: 20}, {X: 320, Y: 20}}, strokes[0].Path[1])

	assert.Equal(t, layout.NewSize(320, 250), inner.drawSize)
	assert.Equal(t, layout.Point{X: 0, Y: 20}, inner.origin)
	assert.Equal(t, 1, inner.depth)
	assert.Equal(t, 0, rec.Depth())
}

func TestDrawRestoresAfterPanic(t *testing.T) {
	w := titled.New("broken", &spy{panics: true})
	rec := surface.NewRecorder()
	assert.Panics(t, func() { w.Draw(rec, layout.NewSize(100, 100)) })
	assert.Equal(t, 0, rec.Depth())
}

func TestNilInnerIsPlaceholder(t *testing.T) {
	w := titled.New("empty", nil)
	rec := surface.NewRecorder()
	w.Draw(rec, layout.NewSize(100, 60))

	rects := rec.Filter(surface.OpFillRect)
	require.Len(t, rects, 2)
	assert.Equal(t, colors.Debug, rects[1].FillColor)
	assert.Equal(t, 40.0, rects[1].H)
	assert.Equal(t, 20.0, rects[1].Transform.TY)
}
