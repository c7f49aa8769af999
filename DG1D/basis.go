package DG1D

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ShihengDuan/columndg/utils"
)

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func gamma1(alpha, beta float64) float64 {
	ab := alpha + beta
	a1 := alpha + 1.
	b1 := beta + 1.
	return a1 * b1 * gamma0(alpha, beta) / (ab + 3.0)
}

// JacobiGQ computes the N'th order Gauss quadrature points and weights
// associated with the Jacobi polynomial of type (alpha, beta), via the
// eigendecomposition of the symmetric tridiagonal recurrence matrix.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	if N == 0 {
		x := []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w := []float64{2.}
		return utils.NewVector(1, x), utils.NewVector(1, w)
	}

	h1 := make([]float64, N+1)
	for i := range h1 {
		h1[i] = 2*float64(i) + alpha + beta
	}

	d0 := make([]float64, N+1)
	fac := -.5 * (alpha*alpha - beta*beta)
	for i, val := range h1 {
		d0[i] = fac / (val * (val + 2.))
	}
	// recurrence has a removable singularity at alpha+beta=0
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.) *
			math.Sqrt(ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/((val+1.)*(val+3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x := eig.Values(nil)
	X = utils.NewVector(N+1, x)

	VVr := mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	w := make([]float64, len(x))
	for i := range w {
		v0 := VVr.At(0, i)
		w[i] = v0 * v0 * gamma0(alpha, beta)
	}
	W = utils.NewVector(len(w), w)
	return
}

// JacobiGL computes the N+1 Gauss-Lobatto points of the (alpha, beta)
// Jacobi polynomial, including both interval endpoints.
func JacobiGL(alpha, beta float64, N int) (X utils.Vector) {
	x := make([]float64, N+1)
	x[0], x[N] = -1, 1
	if N == 1 {
		return utils.NewVector(2, x)
	}
	xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
	for i := 1; i < N; i++ {
		x[i] = xint.AtVec(i - 1)
	}
	return utils.NewVector(N+1, x)
}

// JacobiP evaluates the normalized Jacobi polynomial of order N at the
// points r, using the standard three-term recurrence.
func JacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	var (
		Nc = r.Len()
	)
	rg := 1. / math.Sqrt(gamma0(alpha, beta))
	if N == 0 {
		return utils.ConstArray(Nc, rg)
	}
	PL := make([][]float64, N+1)
	PL[0] = utils.ConstArray(Nc, rg)

	ab := alpha + beta
	rg1 := 1. / math.Sqrt(gamma1(alpha, beta))
	PL[1] = make([]float64, Nc)
	for i := 0; i < Nc; i++ {
		PL[1][i] = rg1 * ((ab+2.0)*r.AtVec(i)/2.0 + (alpha-beta)/2.0)
	}
	if N == 1 {
		return PL[1]
	}

	a1 := alpha + 1.
	b1 := beta + 1.
	aold := 2.0 * math.Sqrt(a1*b1/(ab+3.0)) / (ab + 2.0)
	for i := 0; i < N-1; i++ {
		ip1 := float64(i + 1)
		ip2 := ip1 + 1
		h1 := 2.0*ip1 + ab
		anew := 2.0 / (h1 + 2.0) *
			math.Sqrt(ip2*(ip1+ab+1.)*(ip1+a1)*(ip1+b1)/(h1+1.0)/(h1+3.0))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
		PL[i+2] = make([]float64, Nc)
		for j := 0; j < Nc; j++ {
			PL[i+2][j] = (-aold*PL[i][j] + (r.AtVec(j)-bnew)*PL[i+1][j]) / anew
		}
		aold = anew
	}
	return PL[N]
}

// GradJacobiP evaluates the derivative of the normalized Jacobi
// polynomial of order N at the points r.
func GradJacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	if N == 0 {
		return make([]float64, r.Len())
	}
	p = JacobiP(r, alpha+1, beta+1, N-1)
	fN := float64(N)
	fac := math.Sqrt(fN * (fN + alpha + beta + 1))
	for i, val := range p {
		p[i] = val * fac
	}
	return
}

// Vandermonde1D builds the generalized Vandermonde matrix V_ij =
// P_j(r_i) for the normalized Legendre basis.
func Vandermonde1D(N int, R utils.Vector) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		V.SetCol(j, JacobiP(R, 0, 0, j))
	}
	return
}

// GradVandermonde1D builds the derivative Vandermonde matrix Vr_ij =
// P'_j(r_i).
func GradVandermonde1D(R utils.Vector, N int) (Vr utils.Matrix) {
	Vr = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		Vr.SetCol(j, GradJacobiP(R, 0, 0, j))
	}
	return
}

// Lift1D builds the surface lifting operator M^{-1}*Emat, where Emat
// extracts the two face nodes of each element.
func Lift1D(V utils.Matrix, Np, NFaces, Nfp int) (LIFT utils.Matrix) {
	Emat := utils.NewMatrix(Np, NFaces*Nfp)
	Emat.Set(0, 0, 1)
	Emat.Set(Np-1, 1, 1)
	LIFT = V.Mul(V.Transpose()).Mul(Emat)
	return
}
