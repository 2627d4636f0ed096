package star

// PathSink is the drawing collaborator a ring is handed to. It is the
// move/line subset of a path builder; *gg.Context satisfies it, as does any
// canvas-style API.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}

// Trace walks the ring into sink, translated by (dx, dy): move to the first
// point, line to each subsequent point, then an explicit closing line back
// to the first point.
func (rg Ring) Trace(sink PathSink, dx, dy float64) {
	for i, p := range rg {
		if i == 0 {
			sink.MoveTo(dx+p.X, dy+p.Y)
		} else {
			sink.LineTo(dx+p.X, dy+p.Y)
		}
	}
	sink.LineTo(dx+rg[0].X, dy+rg[0].Y)
}
