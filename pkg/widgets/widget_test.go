package widgets_test

import (
	"testing"

	"github.com/roffe/scadaplayer/pkg/colors"
	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/roffe/scadaplayer/pkg/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase(t *testing.T) {
	var w widgets.Widget = widgets.Base{}
	rec := surface.NewRecorder()

	w.Update(nil, nil, 0, logfile.Record{})
	assert.Empty(t, rec.Ops())

	w.Draw(rec, layout.NewSize(160, 135))
	rects := rec.Filter(surface.OpFillRect)
	require.Len(t, rects, 1)
	assert.Equal(t, colors.Debug, rects[0].FillColor)
	assert.Equal(t, 160.0, rects[0].W)
	assert.Equal(t, 135.0, rects[0].H)
}
