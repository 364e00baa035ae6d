package magick

import (
	"fmt"
	"strings"
)

// Point is a pixel coordinate. Positions stay fractional while geometry is
// being computed and are truncated to whole pixels only when the command is
// serialized.
type Point struct {
	X float64
	Y float64
}

// Style is the drawing state attached to a draw operation at the moment it
// is appended. Zero-valued fields are "not set" and never emitted.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth int
	FontSize    int
}

type op interface {
	append(parts []string, emitted *Style) []string
}

// cropOp emits an ImageMagick geometry token, e.g. -crop 400x800+7275+4350.
type cropOp struct {
	width, height int
	x, y          int
}

func (o cropOp) append(parts []string, _ *Style) []string {
	return append(parts, "-crop", fmt.Sprintf("%dx%d+%d+%d", o.width, o.height, o.x, o.y))
}

// drawOp is a single -draw primitive with the style snapshot it was
// appended under. Style tokens are emitted lazily: only the fields that
// differ from the previously emitted state precede the primitive, which
// keeps last-set-wins semantics without repeating unchanged settings.
type drawOp struct {
	primitive string
	style     Style
}

func (o drawOp) append(parts []string, emitted *Style) []string {
	if o.style.Fill != "" && o.style.Fill != emitted.Fill {
		parts = append(parts, "-fill", o.style.Fill)
		emitted.Fill = o.style.Fill
	}
	if o.style.Stroke != "" && o.style.Stroke != emitted.Stroke {
		parts = append(parts, "-stroke", o.style.Stroke)
		emitted.Stroke = o.style.Stroke
	}
	if o.style.StrokeWidth != 0 && o.style.StrokeWidth != emitted.StrokeWidth {
		parts = append(parts, "-strokewidth", fmt.Sprintf("%d", o.style.StrokeWidth))
		emitted.StrokeWidth = o.style.StrokeWidth
	}
	if o.style.FontSize != 0 && o.style.FontSize != emitted.FontSize {
		parts = append(parts, "-pointsize", fmt.Sprintf("%d", o.style.FontSize))
		emitted.FontSize = o.style.FontSize
	}
	return append(parts, "-draw", fmt.Sprintf("%q", o.primitive))
}

// Command builds a single ImageMagick invocation as an ordered list of
// typed operations with one input reference and one output reference.
type Command struct {
	tool    string
	prefix  []string // animation directives, must precede the input list
	input   string
	output  string
	ops     []op
	pending Style
}

// New creates a command that reads input and, once materialized, writes
// output as its final token.
func New(input, output string) *Command {
	return &Command{
		tool:   "convert",
		input:  input,
		output: output,
	}
}

// NewAnimation creates a multi-frame animation command. The frame delay
// (in centiseconds), infinite loop and previous-frame disposal directives
// have to precede the input list per ImageMagick's argument grammar. A
// single-element input containing a wildcard is passed through verbatim so
// the tool expands the glob itself; otherwise inputs are joined in order.
func NewAnimation(inputs []string, output string, delayCS int) *Command {
	input := strings.Join(inputs, " ")
	if len(inputs) == 1 && strings.Contains(inputs[0], "*") {
		input = inputs[0]
	}
	return &Command{
		tool:   "convert",
		prefix: []string{"-delay", fmt.Sprintf("%d", delayCS), "-loop", "0", "-dispose", "previous"},
		input:  input,
		output: output,
	}
}

// SetTool overrides the renderer binary (ImageMagick 7 ships "magick"
// instead of "convert").
func (c *Command) SetTool(tool string) {
	if tool != "" {
		c.tool = tool
	}
}

// AddCrop appends a crop directive for the given region.
func (c *Command) AddCrop(width, height, x, y int) {
	c.ops = append(c.ops, cropOp{width: width, height: height, x: x, y: y})
}

// AddCircle appends a circle draw. ImageMagick's circle primitive takes the
// center and one point on the perimeter; (cx+radius, cy) is that perimeter
// point, not a bounding-box corner.
func (c *Command) AddCircle(center Point, radius float64) {
	c.draw(fmt.Sprintf("circle %s %s", coords(center), coords(Point{X: center.X + radius, Y: center.Y})))
}

// AddLine appends a line draw between two points.
func (c *Command) AddLine(p1, p2 Point) {
	c.draw(fmt.Sprintf("line %s %s", coords(p1), coords(p2)))
}

// AddText appends a text draw anchored at the given point.
func (c *Command) AddText(p Point, text string) {
	c.draw(fmt.Sprintf("text %s '%s'", coords(p), text))
}

// SetFill sets the fill color for subsequently appended draws.
func (c *Command) SetFill(color string) { c.pending.Fill = color }

// SetStroke sets the stroke color for subsequently appended draws.
func (c *Command) SetStroke(color string) { c.pending.Stroke = color }

// SetStrokeWidth sets the stroke width in pixels for subsequently appended draws.
func (c *Command) SetStrokeWidth(px int) { c.pending.StrokeWidth = px }

// SetFontSize sets the point size for subsequently appended text draws.
func (c *Command) SetFontSize(px int) { c.pending.FontSize = px }

func (c *Command) draw(primitive string) {
	c.ops = append(c.ops, drawOp{primitive: primitive, style: c.pending})
}

// String materializes the invocation. Pure and idempotent: the operation
// list is never mutated, so repeated calls return identical strings. The
// output path appears exactly once, as the final token.
func (c *Command) String() string {
	parts := []string{c.tool}
	parts = append(parts, c.prefix...)
	if c.input != "" {
		parts = append(parts, c.input)
	}
	var emitted Style
	for _, o := range c.ops {
		parts = o.append(parts, &emitted)
	}
	parts = append(parts, c.output)
	return strings.Join(parts, " ")
}

// coords formats a point the way -draw expects, truncating fractional
// pixels.
func coords(p Point) string {
	return fmt.Sprintf("%d,%d", int(p.X), int(p.Y))
}
