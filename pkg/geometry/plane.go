package geometry

// Plane is the set of points p where Normal·p + Constant == 0.
// Points with a negative signed distance are clipped away.
type Plane struct {
	Normal   Vector3
	Constant float64
}

// NewPlane creates a plane from a (not necessarily unit) normal and a constant
func NewPlane(normal Vector3, constant float64) *Plane {
	return &Plane{Normal: normal.Normalize(), Constant: constant}
}

// DistanceToPoint returns the signed distance of point from the plane
func (p *Plane) DistanceToPoint(point Vector3) float64 {
	return p.Normal.Dot(point) + p.Constant
}

// Keeps reports whether point lies on the visible side of the plane
func (p *Plane) Keeps(point Vector3) bool {
	return p.DistanceToPoint(point) >= 0
}

// ClipTriangle clips tri against the plane and returns the visible part as
// zero, one or two triangles. Winding order of the input is preserved.
func (p *Plane) ClipTriangle(tri Triangle) []Triangle {
	vertices := tri.Vertices()

	var dist [3]float64
	insideCount := 0
	for i, v := range vertices {
		dist[i] = p.DistanceToPoint(v)
		if dist[i] >= 0 {
			insideCount++
		}
	}

	switch insideCount {
	case 3:
		return []Triangle{tri}
	case 0:
		return nil
	}

	// intersection of edge a->b with the plane
	cut := func(a, b int) Vector3 {
		t := dist[a] / (dist[a] - dist[b])
		return vertices[a].Lerp(vertices[b], t)
	}

	if insideCount == 1 {
		in := 0
		for i := range dist {
			if dist[i] >= 0 {
				in = i
				break
			}
		}
		next := (in + 1) % 3
		prev := (in + 2) % 3
		return []Triangle{NewTriangle(vertices[in], cut(in, next), cut(in, prev))}
	}

	// two inside, one outside: the kept part is a quad
	out := 0
	for i := range dist {
		if dist[i] < 0 {
			out = i
			break
		}
	}
	next := (out + 1) % 3
	prev := (out + 2) % 3
	a := cut(out, next)
	b := cut(prev, out)
	return []Triangle{
		NewTriangle(a, vertices[next], vertices[prev]),
		NewTriangle(a, vertices[prev], b),
	}
}

// ClipSegment clips the segment a-b against the plane. ok is false when the
// whole segment is hidden.
func (p *Plane) ClipSegment(a, b Vector3) (Vector3, Vector3, bool) {
	da := p.DistanceToPoint(a)
	db := p.DistanceToPoint(b)
	switch {
	case da >= 0 && db >= 0:
		return a, b, true
	case da < 0 && db < 0:
		return a, b, false
	}
	hit := a.Lerp(b, da/(da-db))
	if da < 0 {
		return hit, b, true
	}
	return a, hit, true
}
