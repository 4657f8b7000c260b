package algebra

import "math"

// Quaternion is w + xi + yj + zk.
type Quaternion struct {
	W, X, Y, Z float64
}

// Quaternions is the (non-commutative) division ring of real quaternions.
// Complex values embed in the i-plane, so roots of unity are W + Xi.
type Quaternions struct{}

func (Quaternions) Zero() Quaternion               { return Quaternion{} }
func (Quaternions) One() Quaternion                { return Quaternion{W: 1} }
func (Quaternions) FromInt(n int64) Quaternion     { return Quaternion{W: float64(n)} }
func (Quaternions) FromFloat(f float64) Quaternion { return Quaternion{W: f} }
func (Quaternions) Equal(a, b Quaternion) bool     { return a == b }

func (Quaternions) Add(a, b Quaternion) Quaternion {
	return Quaternion{a.W + b.W, a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (Quaternions) Sub(a, b Quaternion) Quaternion {
	return Quaternion{a.W - b.W, a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (Quaternions) Neg(a Quaternion) Quaternion {
	return Quaternion{-a.W, -a.X, -a.Y, -a.Z}
}

func (Quaternions) Scale(a Quaternion, s float64) Quaternion {
	return Quaternion{a.W * s, a.X * s, a.Y * s, a.Z * s}
}

func (Quaternions) Conj(a Quaternion) Quaternion {
	return Quaternion{a.W, -a.X, -a.Y, -a.Z}
}

// Mul returns the Hamilton product a*b.
func (Quaternions) Mul(a, b Quaternion) Quaternion {
	return Quaternion{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

func (Quaternions) norm2(a Quaternion) float64 {
	return a.W*a.W + a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Abs returns the Euclidean norm |a|.
func (q Quaternions) Abs(a Quaternion) float64 {
	return math.Sqrt(q.norm2(a))
}

// Inv returns conj(a)/|a|^2.
func (q Quaternions) Inv(a Quaternion) (Quaternion, error) {
	n2 := q.norm2(a)
	if n2 == 0 {
		return Quaternion{}, ErrDivisionByZero
	}
	return q.Scale(q.Conj(a), 1/n2), nil
}

// RootOfUnity returns cos(-2πk/n) + sin(-2πk/n)i.
func (Quaternions) RootOfUnity(n, k int) (Quaternion, error) {
	c, s, err := unitRoot(n, k)
	if err != nil {
		return Quaternion{}, err
	}
	return Quaternion{W: c, X: s}, nil
}
