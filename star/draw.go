package star

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 16

func (rg Ring) dbgDraw(scale float64) {
	var maxX, maxY float64
	for _, p := range rg {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Set up the context
	width := int(scale*maxX) + dbgDrawPadding*2
	height := int(scale*maxY) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Translate for padding, then scale. No y flip here: rings are already
	// in a y-down coordinate system.
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)

	c.SetLineWidth(2)
	rg.Trace(c, 0, 0)
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SavePNG("/tmp/star_ring.png")
	imgcat.CatFile("/tmp/star_ring.png", os.Stdout)
}
