package visualize

import (
	"fmt"
	"html"
	"io"
	"strconv"
)

// Element is one shape in a drawing.
type Element interface {
	encode(w io.Writer) (int, error)
}

// Path is an SVG path with a stroke and no geometry of its own beyond D.
type Path struct {
	D           string
	Stroke      string
	StrokeWidth int
	Fill        string
}

// Circle is a filled circle centred on (CX, CY).
type Circle struct {
	CX, CY, R float64
	Fill      string
}

// Text is a label anchored at (X, Y).
type Text struct {
	X, Y     float64
	Anchor   string
	FontSize int
	Fill     string
	Body     string
}

func (p Path) encode(w io.Writer) (int, error) {
	return fmt.Fprintf(w, `<path d="%s" stroke="%s" stroke-width="%d" fill="%s"/>`,
		html.EscapeString(p.D), p.Stroke, p.StrokeWidth, p.Fill)
}

func (c Circle) encode(w io.Writer) (int, error) {
	return fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
		num(c.CX), num(c.CY), num(c.R), c.Fill)
}

func (t Text) encode(w io.Writer) (int, error) {
	return fmt.Fprintf(w, `<text x="%s" y="%s" text-anchor="%s" font-size="%d" fill="%s">%s</text>`,
		num(t.X), num(t.Y), t.Anchor, t.FontSize, t.Fill, html.EscapeString(t.Body))
}

// num writes v in the shortest form that reads back exactly. NaN and
// infinities come out as Go spells them.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
