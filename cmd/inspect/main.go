package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"wireframe-globe/internal/bake"
	"wireframe-globe/internal/batch"
	"wireframe-globe/internal/globe"
)

func main() {
	frames := flag.Int("frames", bake.DefaultFrames, "Frames per rotation")
	showPaths := flag.Bool("paths", false, "Print the path data of every ring")
	frameFile := flag.String("frame-file", "", "Report coverage of a dumped frame image instead")
	flag.Parse()

	if *frameFile != "" {
		if err := inspectImage(*frameFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-frames N] [-paths] <frame-index>")
		fmt.Fprintln(os.Stderr, "       inspect -frame-file <frame-NN.tga>")
		os.Exit(2)
	}
	idx, err := strconv.Atoi(flag.Arg(0))
	if err != nil || idx < 0 || idx >= *frames {
		fmt.Fprintf(os.Stderr, "Error: frame index must be in [0, %d)\n", *frames)
		os.Exit(2)
	}

	p := globe.DefaultParams()
	tl := bake.Timeline{Frames: *frames, Duration: bake.DefaultDuration}
	mesh := globe.NewMesh(p)
	frame := mesh.Frame(tl.Angle(idx))

	fmt.Printf("Frame %d/%d: rotationY=%.4f rad, delay=%.4fs, window=%.4fs\n",
		idx, tl.Frames, frame.RotationY, tl.Delay(idx), tl.Window())
	fmt.Printf("Rings: %d sampled, %d visible\n", len(mesh.Rings()), len(frame.Paths))

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, rp := range frame.Paths {
		points := 0
		for _, arc := range rp.Arcs {
			points += len(arc)
			for _, pt := range arc {
				minX = math.Min(minX, pt.X)
				minY = math.Min(minY, pt.Y)
				maxX = math.Max(maxX, pt.X)
				maxY = math.Max(maxY, pt.Y)
			}
		}
		fmt.Printf("  %-10s arcs=%d points=%d bytes=%d\n", rp.ID, len(rp.Arcs), points, len(rp.D))
		if *showPaths {
			fmt.Printf("    d=%q\n", rp.D)
		}
	}
	if len(frame.Paths) > 0 {
		fmt.Printf("BBox: X[%.2f, %.2f] Y[%.2f, %.2f]\n", minX, maxX, minY, maxY)
	}
}

// inspectImage reports how much of a dumped frame is covered by strokes.
func inspectImage(path string) error {
	img, err := batch.LoadFrame(path)
	if err != nil {
		return err
	}
	b := img.Bounds()
	fmt.Printf("Image %s: %dx%d\n", path, b.Dx(), b.Dy())

	covered := 0
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A == 0 {
				continue
			}
			covered++
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	total := b.Dx() * b.Dy()
	fmt.Printf("Covered: %d/%d pixels (%.1f%%)\n", covered, total, 100*float64(covered)/float64(max(total, 1)))
	if covered > 0 {
		fmt.Printf("BBox: X[%d, %d] Y[%d, %d]\n", minX, maxX, minY, maxY)
	}
	return nil
}
