package core

import "math/rand"

// RandomInUnitSphere generates a uniform random point inside the unit ball
// via rejection sampling.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		// Accept if inside unit sphere
		if p.Length() <= 1.0 {
			return p
		}
	}
}
