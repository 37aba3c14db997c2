package live

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wireframe-globe/internal/globe"
	"wireframe-globe/internal/raster"
	"wireframe-globe/internal/viewmatrix"
)

// DefaultTPS is the refresh rate the spin is advanced at.
const DefaultTPS = 60

// Options configures the live globe. Color is the only visual knob exposed
// to callers; the rest stay at the shared defaults.
type Options struct {
	Color     color.Color
	Params    globe.Params
	LineWidth float64 // in view box units
	Speed     float64 // radians per second
	TPS       int
}

// DefaultOptions draws the shared globe in white.
func DefaultOptions() Options {
	return Options{
		Color:     color.White,
		Params:    globe.DefaultParams(),
		LineWidth: 0.8,
		Speed:     globe.DefaultSpinSpeed,
		TPS:       DefaultTPS,
	}
}

// Globe is an ebiten.Game that spins the wireframe with elapsed time and
// redraws it every frame. It ignores all input.
type Globe struct {
	opts   Options
	mesh   *globe.Mesh
	spin   *globe.Spinner
	width  int
	height int
}

var _ ebiten.Game = (*Globe)(nil)

// New creates a live globe at spin angle zero.
func New(opts Options) *Globe {
	if opts.Color == nil {
		opts.Color = color.White
	}
	if opts.TPS <= 0 {
		opts.TPS = DefaultTPS
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 0.8
	}
	return &Globe{
		opts: opts,
		mesh: globe.NewMesh(opts.Params),
		spin: globe.NewSpinner(opts.Speed),
	}
}

// Step advances the spin by one refresh interval.
func (g *Globe) Step(dt time.Duration) {
	g.spin.Advance(dt)
}

// Angle is the current spin angle.
func (g *Globe) Angle() float64 { return g.spin.Angle() }

// Frame projects the globe at the current angle.
func (g *Globe) Frame() globe.Frame {
	return g.mesh.Frame(g.spin.Angle())
}

// Size is the surface size last reported by Layout.
func (g *Globe) Size() (int, int) { return g.width, g.height }

func (g *Globe) Update() error {
	g.Step(time.Second / time.Duration(g.opts.TPS))
	return nil
}

func (g *Globe) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	vp := viewmatrix.Fit(g.opts.Params.ViewBox(), b.Dx(), b.Dy())

	for _, rp := range g.Frame().Paths {
		width := g.opts.LineWidth * vp.Scale
		if rp.ID.Kind == globe.Equator {
			width *= raster.EquatorScale
		}
		for _, arc := range rp.Arcs {
			for i := 1; i < len(arc); i++ {
				x0, y0 := vp.Apply(arc[i-1])
				x1, y1 := vp.Apply(arc[i])
				vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), g.opts.Color, true)
			}
		}
	}
}

// Layout sizes the drawing surface to its container.
func (g *Globe) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
