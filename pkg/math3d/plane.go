package math3d

// parallelEpsilon is the smallest |n·dir| treated as a real crossing.
const parallelEpsilon = 1e-6

// PlaneCast intersects the ray origin + dir*t (t >= 0) with the plane
// {p : n·p = d}. It reports false when the ray is parallel to the plane or the
// plane lies behind the origin.
func PlaneCast(n Vec3, d float32, origin, dir Vec3) (Vec3, bool) {
	denom := n.Dot(dir)
	if Abs(denom) < parallelEpsilon {
		return Vec3{}, false
	}

	t := (d - n.Dot(origin)) / denom
	if !IsFinite(t) || t < 0 {
		return Vec3{}, false
	}

	return origin.Add(dir.Scale(t)), true
}
