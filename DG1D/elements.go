package DG1D

import (
	"math"

	"github.com/james-bowman/sparse"

	"github.com/ShihengDuan/columndg/utils"
)

// Elements1D holds the collocation nodes, elemental operators, metric
// terms and face connectivity of a one-dimensional column mesh. All
// fields are built at construction and immutable afterwards.
type Elements1D struct {
	K, Np, Nfp, NFaces int

	VX utils.Vector // element boundary coordinates, ascending, K+1
	R  utils.Vector // reference element nodes on [-1,1], Np

	EToV, EToE, EToF utils.Matrix

	X utils.Matrix // physical node coordinates, Np x K

	V, Vinv utils.Matrix // Vandermonde matrix and its inverse
	Dr      utils.Matrix // strong differentiation matrix
	Drw     utils.Matrix // weak differentiation matrix M^{-1}*Dr'*M
	LIFT    utils.Matrix // surface lifting operator M^{-1}*Emat
	MassRef utils.Matrix // reference element mass matrix
	W       utils.Vector // reference quadrature weights

	J, Rx      utils.Matrix // metric Jacobian and its inverse, Np x K
	NX, FScale utils.Matrix // outward normals and face Jacobian scaling, 2 x K

	VmapM, VmapP utils.Index // face trace maps into Np x K fields
	MapB         utils.Index // boundary positions in trace space

	MapBottom, MapTop   int // trace-space positions of the column ends
	VmapBottom, VmapTop int // node-space positions of the column ends

	FaceTags []utils.BoundaryTag // per trace position, 2K
}

// UniformMesh1D returns K+1 evenly spaced element boundary coordinates
// spanning [xmin, xmax].
func UniformMesh1D(xmin, xmax float64, K int) (vx []float64) {
	vx = make([]float64, K+1)
	for i := range vx {
		vx[i] = xmin + (xmax-xmin)*float64(i)/float64(K)
	}
	return
}

// NewColumn builds a column mesh of order N from an ascending sequence
// of element boundary coordinates. The bottom face of the first element
// is tagged TagBottom, the top face of the last element TagTop.
func NewColumn(N int, vx []float64) (el *Elements1D, err error) {
	if N < 1 {
		return nil, utils.ConfigErrorf("polynomial order must be positive, got %d", N)
	}
	if len(vx) < 2 {
		return nil, utils.ConfigErrorf("mesh needs at least one element, got %d boundary coordinates", len(vx))
	}
	for i := 1; i < len(vx); i++ {
		if vx[i] <= vx[i-1] {
			return nil, utils.ConfigErrorf("element boundary coordinates must be strictly ascending at position %d", i)
		}
	}
	K := len(vx) - 1
	el = &Elements1D{
		K:      K,
		Np:     N + 1,
		Nfp:    1,
		NFaces: 2,
		VX:     utils.NewVector(K+1, append([]float64{}, vx...)),
	}
	el.EToV = utils.NewMatrix(K, 2)
	for k := 0; k < K; k++ {
		el.EToV.Set(k, 0, float64(k))
		el.EToV.Set(k, 1, float64(k+1))
	}
	el.startup()
	el.connect()
	el.buildMaps()
	return
}

func (el *Elements1D) startup() {
	var (
		err error
		N   = el.Np - 1
	)
	el.R = JacobiGL(0, 0, N)
	el.V = Vandermonde1D(N, el.R)
	if el.Vinv, err = el.V.Inverse(); err != nil {
		panic("error inverting V")
	}
	Vr := GradVandermonde1D(el.R, N)
	el.Dr = Vr.Mul(el.Vinv)

	VVT := el.V.Mul(el.V.Transpose())
	if el.MassRef, err = VVT.Inverse(); err != nil {
		panic("error inverting V*V'")
	}
	el.Drw = VVT.Mul(el.Dr.Transpose()).Mul(el.MassRef)
	el.LIFT = Lift1D(el.V, el.Np, el.NFaces, el.Nfp)

	el.W = utils.NewVector(el.Np)
	for i := 0; i < el.Np; i++ {
		var sum float64
		for j := 0; j < el.Np; j++ {
			sum += el.MassRef.At(i, j)
		}
		el.W.V.SetVec(i, sum)
	}

	el.X = utils.NewMatrix(el.Np, el.K)
	for k := 0; k < el.K; k++ {
		h := el.VX.AtVec(k+1) - el.VX.AtVec(k)
		col := el.R.Copy().AddScalar(1).Scale(0.5 * h).AddScalar(el.VX.AtVec(k))
		el.X.SetCol(k, col.RawVector())
	}

	el.J = el.Dr.Mul(el.X)
	el.Rx = el.J.Copy().POW(-1)

	el.NX = utils.NewMatrix(el.NFaces, el.K)
	el.FScale = utils.NewMatrix(el.NFaces, el.K)
	for k := 0; k < el.K; k++ {
		el.NX.Set(0, k, -1)
		el.NX.Set(1, k, 1)
		el.FScale.Set(0, k, 1./el.J.At(0, k))
		el.FScale.Set(1, k, 1./el.J.At(el.Np-1, k))
	}
}

// connect derives element-to-element adjacency from the face-to-vertex
// incidence: two faces sharing a vertex are neighbors.
func (el *Elements1D) connect() {
	var (
		K          = el.K
		Nv         = K + 1
		TotalFaces = el.NFaces * K
		vn         = [2]int{0, 1} // local face to vertex connections
	)
	FToVDok := sparse.NewDOK(TotalFaces, Nv)
	var sk int
	for k := 0; k < K; k++ {
		for face := 0; face < el.NFaces; face++ {
			FToVDok.Set(sk, int(el.EToV.At(k, vn[face])), 1)
			sk++
		}
	}
	FToV := FToVDok.ToCSR()
	FToF := sparse.NewCSR(TotalFaces, TotalFaces, nil, nil, nil)
	FToF.Mul(FToV, FToV.T())
	for i := 0; i < TotalFaces; i++ {
		FToF.Set(i, i, FToF.At(i, i)-2)
	}
	FacesIndex := utils.MatFind(FToF, utils.Equal, 1)

	element1 := FacesIndex.RI.Apply(func(val int) int { return val / el.NFaces })
	face1 := FacesIndex.RI.Apply(func(val int) int { return int(math.Mod(float64(val), float64(el.NFaces))) })
	element2 := FacesIndex.CI.Apply(func(val int) int { return val / el.NFaces })
	face2 := FacesIndex.CI.Apply(func(val int) int { return int(math.Mod(float64(val), float64(el.NFaces))) })

	// default to self-connection, overwritten for matched faces
	el.EToE = utils.NewMatrix(K, el.NFaces)
	el.EToF = utils.NewMatrix(K, el.NFaces)
	for k := 0; k < K; k++ {
		for f := 0; f < el.NFaces; f++ {
			el.EToE.Set(k, f, float64(k))
			el.EToF.Set(k, f, float64(f))
		}
	}
	for i := range element1 {
		el.EToE.Set(element1[i], face1[i], float64(element2[i]))
		el.EToF.Set(element1[i], face1[i], float64(face2[i]))
	}
}

func (el *Elements1D) buildMaps() {
	var (
		NF = el.Nfp * el.NFaces
	)
	faceNode := [2]int{0, el.Np - 1}
	el.VmapM = utils.NewIndex(NF * el.K)
	el.VmapP = utils.NewIndex(NF * el.K)
	for k := 0; k < el.K; k++ {
		for f := 0; f < el.NFaces; f++ {
			el.VmapM[f+NF*k] = faceNode[f] + k*el.Np
			k2 := int(el.EToE.At(k, f))
			f2 := int(el.EToF.At(k, f))
			el.VmapP[f+NF*k] = faceNode[f2] + k2*el.Np
		}
	}
	el.MapB = el.MapB[:0]
	for i := range el.VmapM {
		if el.VmapP[i] == el.VmapM[i] {
			el.MapB = append(el.MapB, i)
		}
	}
	el.MapBottom = 0
	el.MapTop = NF*el.K - 1
	el.VmapBottom = 0
	el.VmapTop = el.Np*el.K - 1
	el.FaceTags = make([]utils.BoundaryTag, NF*el.K)
	el.FaceTags[el.MapBottom] = utils.TagBottom
	el.FaceTags[el.MapTop] = utils.TagTop
}

// MinNodeSpacing returns the smallest distance between adjacent
// collocation nodes, the length scale entering the stability bound.
func (el *Elements1D) MinNodeSpacing() float64 {
	return el.X.Row(1).Subtract(el.X.Row(0)).Apply(math.Abs).Min()
}

// Integrate computes the spatial integral of a nodal field over the
// column using the reference quadrature weights and element Jacobians.
func (el *Elements1D) Integrate(U utils.Matrix) (total float64) {
	for k := 0; k < el.K; k++ {
		total += el.J.At(0, k) * el.W.Dot(U.Col(k))
	}
	return
}

// GlobalCoordinates flattens the node coordinates bottom-to-top into a
// single sequence, element by element.
func (el *Elements1D) GlobalCoordinates() []float64 {
	return el.FlattenField(el.X)
}

// FlattenField flattens an Np x K nodal field into a bottom-to-top
// sequence matching GlobalCoordinates ordering.
func (el *Elements1D) FlattenField(U utils.Matrix) (out []float64) {
	out = make([]float64, el.Np*el.K)
	for k := 0; k < el.K; k++ {
		for i := 0; i < el.Np; i++ {
			out[i+k*el.Np] = U.At(i, k)
		}
	}
	return
}
