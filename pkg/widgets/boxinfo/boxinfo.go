package boxinfo

import (
	"fmt"
	"strings"

	"github.com/roffe/scadaplayer/pkg/colors"
	"github.com/roffe/scadaplayer/pkg/layout"
	"github.com/roffe/scadaplayer/pkg/logfile"
	"github.com/roffe/scadaplayer/pkg/surface"
	"github.com/roffe/scadaplayer/pkg/widgets"
)

const (
	fontSize   = 16
	rowHeight  = 17
	firstRow   = 30 // baseline of the first row
	sideMargin = 10
)

// ValuesFunc produces one value per label for the current frame.
type ValuesFunc func(meta *logfile.Metadata, records logfile.Records, index int, current logfile.Record) []string

type Row struct {
	Label string // upper-cased and colon suffixed
	Value string
}

// BoxInfo is a two column label/value table.
type BoxInfo struct {
	labels []string
	values []string
	source ValuesFunc
}

var _ widgets.Widget = (*BoxInfo)(nil)

// New creates a table with fixed labels. Values start out empty.
func New(labels []string, source ValuesFunc) *BoxInfo {
	b := &BoxInfo{
		labels: append([]string(nil), labels...),
		source: source,
	}
	b.values = make([]string, len(b.labels))
	return b
}

// SetValues replaces every value. It panics when the number of values does
// not match the number of labels.
func (b *BoxInfo) SetValues(values []string) {
	if len(values) != len(b.labels) {
		panic(fmt.Sprintf("boxinfo: %d values for %d labels", len(values), len(b.labels)))
	}
	b.values = append(b.values[:0], values...)
}

func (b *BoxInfo) Update(meta *logfile.Metadata, records logfile.Records, index int, current logfile.Record) {
	if b.source == nil {
		return
	}
	b.SetValues(b.source(meta, records, index, current))
}

func (b *BoxInfo) Rows() []Row {
	rows := make([]Row, len(b.labels))
	for i, label := range b.labels {
		rows[i] = Row{Label: strings.ToUpper(label) + ":", Value: b.values[i]}
	}
	return rows
}

func (b *BoxInfo) Draw(s surface.Surface, size layout.Size) {
	s.SetFont(surface.Font{Size: fontSize})
	s.SetFillColor(colors.Foreground)
	for i, row := range b.Rows() {
		y := firstRow + float64(i)*rowHeight
		s.SetTextAlign(surface.AlignLeft)
		s.FillText(row.Label, sideMargin, y, size.Width)
		s.SetTextAlign(surface.AlignRight)
		s.FillText(row.Value, size.Width-sideMargin, y, size.Width)
	}
}
