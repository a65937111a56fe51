package surface

import (
	"image/color"

	"github.com/roffe/scadaplayer/pkg/layout"
)

type OpKind int

const (
	OpSave OpKind = iota
	OpRestore
	OpTranslate
	OpScale
	OpFillRect
	OpStroke
	OpFill
	OpFillText
)

func (k OpKind) String() string {
	switch k {
	case OpSave:
		return "Save"
	case OpRestore:
		return "Restore"
	case OpTranslate:
		return "Translate"
	case OpScale:
		return "Scale"
	case OpFillRect:
		return "FillRect"
	case OpStroke:
		return "Stroke"
	case OpFill:
		return "Fill"
	case OpFillText:
		return "FillText"
	default:
		return "Unknown"
	}
}

// Transform is the translate/scale state of a Recorder.
type Transform struct {
	TX, TY float64
	SX, SY float64
}

var identity = Transform{SX: 1, SY: 1}

// Apply maps a local point to surface coordinates.
func (t Transform) Apply(p layout.Point) layout.Point {
	return layout.Point{X: t.TX + p.X*t.SX, Y: t.TY + p.Y*t.SY}
}

// Op is one recorded drawing call together with the state it was issued in.
type Op struct {
	Kind OpKind

	X, Y, W, H float64
	Text       string
	MaxWidth   float64
	Path       [][]layout.Point // subpaths in local coordinates, Stroke and Fill only
	Closed     []bool

	FillColor   color.Color
	StrokeColor color.Color
	LineWidth   float64
	Font        Font
	Align       TextAlign
	Transform   Transform
}

type recorderState struct {
	transform Transform
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	font      Font
	align     TextAlign
}

// Recorder is a Surface that keeps every call instead of rasterizing it.
type Recorder struct {
	ops   []Op
	state recorderState
	stack []recorderState

	path   [][]layout.Point
	closed []bool

	maxDepth   int
	unbalanced int
}

var _ Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{}
	r.Reset()
	return r
}

// Reset drops every recorded op and restores the initial state.
func (r *Recorder) Reset() {
	r.ops = nil
	r.stack = nil
	r.path = nil
	r.closed = nil
	r.maxDepth = 0
	r.unbalanced = 0
	r.state = recorderState{
		transform: identity,
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		font:      Font{Size: 10},
	}
}

func (r *Recorder) op(kind OpKind) Op {
	return Op{
		Kind:        kind,
		FillColor:   r.state.fill,
		StrokeColor: r.state.stroke,
		LineWidth:   r.state.lineWidth,
		Font:        r.state.font,
		Align:       r.state.align,
		Transform:   r.state.transform,
	}
}

func (r *Recorder) Save() {
	r.ops = append(r.ops, r.op(OpSave))
	r.stack = append(r.stack, r.state)
	r.maxDepth = max(r.maxDepth, len(r.stack))
}

func (r *Recorder) Restore() {
	r.ops = append(r.ops, r.op(OpRestore))
	if len(r.stack) == 0 {
		r.unbalanced++
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) {
	o := r.op(OpTranslate)
	o.X, o.Y = x, y
	r.ops = append(r.ops, o)
	t := &r.state.transform
	t.TX += x * t.SX
	t.TY += y * t.SY
}

func (r *Recorder) Scale(sx, sy float64) {
	o := r.op(OpScale)
	o.X, o.Y = sx, sy
	r.ops = append(r.ops, o)
	r.state.transform.SX *= sx
	r.state.transform.SY *= sy
}

func (r *Recorder) SetFillColor(c color.Color)   { r.state.fill = c }
func (r *Recorder) SetStrokeColor(c color.Color) { r.state.stroke = c }
func (r *Recorder) SetLineWidth(w float64)       { r.state.lineWidth = w }
func (r *Recorder) SetFont(f Font)               { r.state.font = f }
func (r *Recorder) SetTextAlign(a TextAlign)     { r.state.align = a }

func (r *Recorder) FillRect(x, y, w, h float64) {
	o := r.op(OpFillRect)
	o.X, o.Y, o.W, o.H = x, y, w, h
	r.ops = append(r.ops, o)
}

func (r *Recorder) BeginPath() {
	r.path = nil
	r.closed = nil
}

func (r *Recorder) MoveTo(x, y float64) {
	r.path = append(r.path, []layout.Point{{X: x, Y: y}})
	r.closed = append(r.closed, false)
}

func (r *Recorder) LineTo(x, y float64) {
	if len(r.path) == 0 {
		r.MoveTo(x, y)
		return
	}
	last := len(r.path) - 1
	r.path[last] = append(r.path[last], layout.Point{X: x, Y: y})
}

func (r *Recorder) ClosePath() {
	if len(r.closed) > 0 {
		r.closed[len(r.closed)-1] = true
	}
}

func (r *Recorder) pathOp(kind OpKind) {
	o := r.op(kind)
	o.Path = make([][]layout.Point, len(r.path))
	for i, sub := range r.path {
		o.Path[i] = append([]layout.Point(nil), sub...)
	}
	o.Closed = append([]bool(nil), r.closed...)
	r.ops = append(r.ops, o)
}

func (r *Recorder) Stroke() { r.pathOp(OpStroke) }
func (r *Recorder) Fill()   { r.pathOp(OpFill) }

func (r *Recorder) FillText(text string, x, y, maxWidth float64) {
	o := r.op(OpFillText)
	o.Text = text
	o.X, o.Y = x, y
	o.MaxWidth = maxWidth
	r.ops = append(r.ops, o)
}

// Ops returns every recorded call in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Filter returns the recorded calls of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, o := range r.ops {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// Texts returns the strings passed to FillText in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, o := range r.Filter(OpFillText) {
		out = append(out, o.Text)
	}
	return out
}

// Depth is the number of Save calls not yet restored.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// MaxDepth is the deepest Save nesting seen since the last Reset.
func (r *Recorder) MaxDepth() int {
	return r.maxDepth
}

// Unbalanced counts Restore calls issued without a matching Save.
func (r *Recorder) Unbalanced() int {
	return r.unbalanced
}
