package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Camera generates rays for normalized image coordinates (u, v) in [0,1]
type Camera interface {
	GetRay(u, v float64) Ray
}
