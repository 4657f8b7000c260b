package algebra

import "math"

// Octonion holds the eight real coordinates e0..e7. The first four are the
// quaternion a and the last four the quaternion b of the Cayley-Dickson pair
// (a, b).
type Octonion [8]float64

// Octonions is the alternative division algebra of real octonions built by
// Cayley-Dickson doubling of the quaternions:
//
//	(a, b)(c, d) = (ac - d*b, da + bc*)
//
// Multiplication is neither commutative nor associative, but any two elements
// generate an associative subalgebra, which keeps the DFT invertible when the
// twiddle factors are drawn from the e0/e1 plane.
type Octonions struct{}

func (Octonions) Zero() Octonion               { return Octonion{} }
func (Octonions) One() Octonion                { return Octonion{1} }
func (Octonions) FromInt(n int64) Octonion     { return Octonion{float64(n)} }
func (Octonions) FromFloat(f float64) Octonion { return Octonion{f} }
func (Octonions) Equal(a, b Octonion) bool     { return a == b }

func (Octonions) Add(a, b Octonion) Octonion {
	var out Octonion
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

func (Octonions) Sub(a, b Octonion) Octonion {
	var out Octonion
	for i := range out {
		out[i] = a[i] - b[i]
	}
	return out
}

func (Octonions) Neg(a Octonion) Octonion {
	var out Octonion
	for i := range out {
		out[i] = -a[i]
	}
	return out
}

func (Octonions) Scale(a Octonion, s float64) Octonion {
	var out Octonion
	for i := range out {
		out[i] = a[i] * s
	}
	return out
}

// Conj negates the seven imaginary coordinates.
func (Octonions) Conj(a Octonion) Octonion {
	out := Octonion{a[0]}
	for i := 1; i < len(out); i++ {
		out[i] = -a[i]
	}
	return out
}

func (o Octonion) halves() (Quaternion, Quaternion) {
	return Quaternion{o[0], o[1], o[2], o[3]}, Quaternion{o[4], o[5], o[6], o[7]}
}

func joinHalves(a, b Quaternion) Octonion {
	return Octonion{a.W, a.X, a.Y, a.Z, b.W, b.X, b.Y, b.Z}
}

// Mul returns the Cayley-Dickson product x*y.
func (Octonions) Mul(x, y Octonion) Octonion {
	var h Quaternions
	a, b := x.halves()
	c, d := y.halves()
	left := h.Sub(h.Mul(a, c), h.Mul(h.Conj(d), b))
	right := h.Add(h.Mul(d, a), h.Mul(b, h.Conj(c)))
	return joinHalves(left, right)
}

func (Octonions) norm2(a Octonion) float64 {
	var s float64
	for _, v := range a {
		s += v * v
	}
	return s
}

// Abs returns the Euclidean norm |a|.
func (o Octonions) Abs(a Octonion) float64 {
	return math.Sqrt(o.norm2(a))
}

// Inv returns conj(a)/|a|^2.
func (o Octonions) Inv(a Octonion) (Octonion, error) {
	n2 := o.norm2(a)
	if n2 == 0 {
		return Octonion{}, ErrDivisionByZero
	}
	return o.Scale(o.Conj(a), 1/n2), nil
}

// RootOfUnity returns cos(-2πk/n) e0 + sin(-2πk/n) e1.
func (Octonions) RootOfUnity(n, k int) (Octonion, error) {
	c, s, err := unitRoot(n, k)
	if err != nil {
		return Octonion{}, err
	}
	return Octonion{c, s}, nil
}
