package bake

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Style controls how the baked paths are painted.
type Style struct {
	Class       string  // class on the root element
	Stroke      string  // CSS color; currentColor lets the page decide
	StrokeWidth float64 // in view box units
}

// DefaultStyle matches the stylesheet the site expects.
func DefaultStyle() Style {
	return Style{Class: "globe-animation", Stroke: "currentColor", StrokeWidth: 0.8}
}

// errWriter keeps the first write error, since svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// WriteSVG writes the asset as a single animated SVG document. Every frame is
// a group carrying its own animation delay; paths inside carry no timing.
func (a *Asset) WriteSVG(w io.Writer, st Style) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	vb := a.Params.ViewBox()
	canvas.Startraw(
		fmt.Sprintf(` viewBox="%s %s %s %s"`, num(vb.MinX), num(vb.MinY), num(vb.Width), num(vb.Height)),
		fmt.Sprintf(` class="%s"`, st.Class),
	)
	canvas.Style("text/css", a.stylesheet(st))

	for f, frame := range a.Frames {
		canvas.Group(fmt.Sprintf(`class="globe-frame frame-%d"`, f))
		for _, rp := range frame.Paths {
			canvas.Path(rp.D)
		}
		canvas.Gend()
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("bake: write svg: %w", ew.err)
	}
	return nil
}

// stylesheet builds the shared keyframes plus one delay rule per frame.
func (a *Asset) stylesheet(st Style) string {
	tl := a.Timeline
	visible := tl.VisiblePercent()
	duration := num(tl.Duration)

	var b strings.Builder
	fmt.Fprintf(&b, ".%s { overflow: visible; }\n", st.Class)
	b.WriteString(".globe-frame { opacity: 0; }\n")
	fmt.Fprintf(&b, ".globe-frame path { fill: none; stroke: %s; stroke-width: %s; }\n", st.Stroke, num(st.StrokeWidth))

	b.WriteString("@keyframes showFrame {\n")
	b.WriteString("  0% { opacity: 1; }\n")
	fmt.Fprintf(&b, "  %s%% { opacity: 1; }\n", strconv.FormatFloat(visible, 'f', 4, 64))
	fmt.Fprintf(&b, "  %s%% { opacity: 0; }\n", strconv.FormatFloat(visible+0.001, 'f', 4, 64))
	b.WriteString("  100% { opacity: 0; }\n")
	b.WriteString("}\n")

	for f := range a.Frames {
		fmt.Fprintf(&b, ".frame-%d { animation: showFrame %ss linear infinite; animation-delay: %ss; }\n",
			f, duration, strconv.FormatFloat(tl.Delay(f), 'f', 4, 64))
	}
	return b.String()
}

// EncodeSVG renders the document into memory.
func (a *Asset) EncodeSVG(st Style) ([]byte, error) {
	var buf bytes.Buffer
	if err := a.WriteSVG(&buf, st); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile bakes the document and writes it to path, replacing any previous
// version. It returns the number of bytes written.
func (a *Asset) WriteFile(path string, st Style) (int, error) {
	data, err := a.EncodeSVG(st)
	if err != nil {
		return 0, err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("bake: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("bake: write %s: %w", path, err)
	}
	return len(data), nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
