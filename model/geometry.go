package model

const (
	mmPerInch  = 25.4
	mmPerPoint = 25.4 / 72.0
)

// Length is a physical length. It is stored internally in millimeters and
// is deliberately opaque: arithmetic goes through methods, and raw numbers
// enter only via the Millimeters, Points and Inches constructors.
type Length struct {
	mm float64
}

// Zero is the zero-valued Length.
var Zero = Length{}

// Millimeters creates a Length of v millimeters.
func Millimeters(v float64) Length {
	return Length{mm: v}
}

// Points creates a Length of v typographic points (1/72 inch).
func Points(v float64) Length {
	return Length{mm: v * mmPerPoint}
}

// Inches creates a Length of v inches.
func Inches(v float64) Length {
	return Length{mm: v * mmPerInch}
}

// Millimeters returns the length in millimeters.
func (l Length) Millimeters() float64 {
	return l.mm
}

// Points returns the length in typographic points.
func (l Length) Points() float64 {
	return l.mm / mmPerPoint
}

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return l.mm / mmPerInch
}

// Add returns l + other.
func (l Length) Add(other Length) Length {
	return Length{mm: l.mm + other.mm}
}

// Sub returns l - other.
func (l Length) Sub(other Length) Length {
	return Length{mm: l.mm - other.mm}
}

// Mul returns l scaled by the unit-less factor k.
func (l Length) Mul(k float64) Length {
	return Length{mm: l.mm * k}
}

// Max returns the larger of l and other.
func (l Length) Max(other Length) Length {
	if other.mm > l.mm {
		return other
	}
	return l
}

// Less reports whether l is strictly shorter than other.
func (l Length) Less(other Length) bool {
	return l.mm < other.mm
}

// IsZero reports whether l is exactly zero.
func (l Length) IsZero() bool {
	return l.mm == 0
}

// Point is a position on a page. The coordinate origin depends on context:
// the layout cursor tracks positions from the top-left, while emitted
// drawing operations use the renderer's bottom-left origin.
type Point struct {
	X, Y Length
}
