package main

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/quintic/starpoly"
)

// Demo of star polygon generation. By default the computed points are
// printed to stdout as newline separated "x y" pairs. With --png the star is
// rendered to an image instead, and --cat previews it in the terminal (for
// terminals that speak the iTerm2 image protocol).
var (
	points   = kingpin.Flag("points", "Number of star points.").Short('n').Default("5").Int()
	density  = kingpin.Flag("density", "Number of points skipped per connecting line.").Short('d').Default("2").Int()
	outlined = kingpin.Flag("outlined", "Produce the non-self-intersecting outline.").Short('o').Bool()
	size     = kingpin.Flag("size", "Side length of the square bounding box.").Default("512").Float64()
	rotation = kingpin.Flag("rotation", "Rotation in degrees.").Default("0").Float64()
	pngPath  = kingpin.Flag("png", "Render to a PNG file instead of printing points.").String()
	cat      = kingpin.Flag("cat", "Preview the rendered PNG in the terminal.").Bool()
	verbose  = kingpin.Flag("verbose", "Dump the ring's chords.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	spec := starpoly.Spec{
		NumPoints:       *points,
		Density:         *density,
		Outlined:        *outlined,
		RotationDegrees: *rotation,
		Box:             starpoly.SquareRect(0, 0, *size),
	}

	ring, err := starpoly.Outline(spec)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	if *verbose {
		for _, seg := range ring.Segments() {
			fmt.Fprintln(os.Stderr, seg)
		}
	}

	if *pngPath != "" {
		if err := render(spec, *pngPath); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err))
			os.Exit(1)
		}
		if *cat {
			imgcat.CatFile(*pngPath, os.Stdout)
		}
		return
	}

	for _, p := range ring {
		fmt.Printf("%g %g\n", p.X, p.Y)
	}
}

func render(spec starpoly.Spec, path string) error {
	c := gg.NewContext(int(spec.Box.Width()), int(spec.Box.Height()))
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, spec.Box.Width(), spec.Box.Height())
	c.Fill()
	c.SetFillRuleEvenOdd()

	if err := starpoly.Trace(spec, c); err != nil {
		return err
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2)
	c.Stroke()

	return c.SavePNG(path)
}
