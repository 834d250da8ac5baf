package geo

// Tensor is a 3x3 matrix, row major.
type Tensor [3][3]float64

// Identity returns the 3x3 identity matrix.
func Identity() Tensor {
	return Tensor{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (t Tensor) Add(o Tensor) Tensor {
	var r Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[i][j] + o[i][j]
		}
	}
	return r
}

func (t Tensor) Sub(o Tensor) Tensor {
	var r Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[i][j] - o[i][j]
		}
	}
	return r
}

func (t Tensor) Scale(s float64) Tensor {
	var r Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[i][j] * s
		}
	}
	return r
}

func (t Tensor) Transposed() Tensor {
	var r Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t[j][i]
		}
	}
	return r
}

func (t Tensor) Trace() float64 {
	return t[0][0] + t[1][1] + t[2][2]
}

// MulVec applies the tensor to a vector.
func (t Tensor) MulVec(v Vec3) Vec3 {
	return Vec3{
		t[0][0]*v.X + t[0][1]*v.Y + t[0][2]*v.Z,
		t[1][0]*v.X + t[1][1]*v.Y + t[1][2]*v.Z,
		t[2][0]*v.X + t[2][1]*v.Y + t[2][2]*v.Z,
	}
}

// IsSymmetric reports whether |t[i][j]-t[j][i]| <= tol for all off-diagonal
// entries.
func (t Tensor) IsSymmetric(tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			d := t[i][j] - t[j][i]
			if d < 0 {
				d = -d
			}
			if d > tol {
				return false
			}
		}
	}
	return true
}
