package core

// Chroma marks which colour channels a ray carries. Camera-primary rays are
// White and carry all three; a dispersive interaction splits a White ray into
// per-channel rays that must never be split again.
type Chroma int

const (
	ChromaWhite Chroma = iota // carries all three channels (zero value)
	ChromaRed
	ChromaGreen
	ChromaBlue
)

// Channel returns the colour channel index for a tagged chroma.
// The second return is false for White, which carries every channel.
func (c Chroma) Channel() (int, bool) {
	switch c {
	case ChromaRed:
		return 0, true
	case ChromaGreen:
		return 1, true
	case ChromaBlue:
		return 2, true
	default:
		return 0, false
	}
}

// ChromaForChannel returns the chroma tag for a colour channel index (0=R, 1=G, 2=B)
func ChromaForChannel(channel int) Chroma {
	switch channel {
	case 0:
		return ChromaRed
	case 1:
		return ChromaGreen
	default:
		return ChromaBlue
	}
}

// String returns a human-readable chroma name
func (c Chroma) String() string {
	switch c {
	case ChromaRed:
		return "red"
	case ChromaGreen:
		return "green"
	case ChromaBlue:
		return "blue"
	default:
		return "white"
	}
}

// Ray represents a ray with an origin, a direction and a chroma tag
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Chroma    Chroma
}

// NewRay creates a new White ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Chroma: ChromaWhite}
}

// NewChromaRay creates a new ray tagged with a specific chroma
func NewChromaRay(origin, direction Vec3, chroma Chroma) Ray {
	return Ray{Origin: origin, Direction: direction, Chroma: chroma}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
