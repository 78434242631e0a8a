package geom

// Translate shifts every point by (dx, dy) in place.
func (p *PointSet) Translate(dx, dy float64) {
	for i := range p.X {
		p.X[i] += dx
		p.Y[i] += dy
	}
}

// Rotate90 rotates every point about the origin by k quarter turns in place.
// One quarter turn is the anticlockwise map (x, y) -> (-y, x). k is taken
// modulo 4, so negative values turn clockwise: k = -1 equals k = 3.
func (p *PointSet) Rotate90(k int) {
	switch ((k % 4) + 4) % 4 {
	case 1:
		for i := range p.X {
			p.X[i], p.Y[i] = -p.Y[i], p.X[i]
		}
	case 2:
		for i := range p.X {
			p.X[i], p.Y[i] = -p.X[i], -p.Y[i]
		}
	case 3:
		for i := range p.X {
			p.X[i], p.Y[i] = p.Y[i], -p.X[i]
		}
	}
}

// Reverse flips the traversal order of the points in place. Coordinates are
// untouched; only their sequence changes.
func (p *PointSet) Reverse() {
	for i, j := 0, p.Len()-1; i < j; i, j = i+1, j-1 {
		p.X[i], p.X[j] = p.X[j], p.X[i]
		p.Y[i], p.Y[j] = p.Y[j], p.Y[i]
	}
}

// Concat joins the given sets into one PointSet, preserving order within and
// across the inputs. The result owns fresh storage and aliases none of them.
func Concat(sets ...PointSet) PointSet {
	var n int
	for _, s := range sets {
		n += s.Len()
	}
	out := New(n)
	var off int
	for _, s := range sets {
		copy(out.X[off:], s.X)
		copy(out.Y[off:], s.Y)
		off += s.Len()
	}
	return out
}
