package Volume3D

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gotangent/cga"
	"github.com/notargets/gotangent/utils"
)

// Mapping holds one versor per cell of a ResU x ResV x ResW grid, row major
// with w varying fastest.
type Mapping struct {
	ResU, ResV, ResW int
	grid             utils.R3
	cells            []cga.Versor
}

func NewMapping(resU, resV, resW int) (m *Mapping) {
	m = &Mapping{
		ResU: resU, ResV: resV, ResW: resW,
		grid: utils.NewR3(resU, resV, resW),
	}
	m.cells = make([]cga.Versor, m.grid.Size())
	return
}

func (m *Mapping) Len() int { return len(m.cells) }

func (m *Mapping) Index(i, j, k int) int {
	if i < 0 || i >= m.ResU || j < 0 || j >= m.ResV || k < 0 || k >= m.ResW {
		panic(fmt.Errorf("mapping index (%d,%d,%d) outside %dx%dx%d",
			i, j, k, m.ResU, m.ResV, m.ResW))
	}
	return m.grid.Index(i, j, k)
}

// IJK is the grid index of the n-th cell in index order.
func (m *Mapping) IJK(n int) (i, j, k int) { return m.grid.IJK(n) }

func (m *Mapping) At(i, j, k int) cga.Versor { return m.cells[m.Index(i, j, k)] }

func (m *Mapping) Set(i, j, k int, v cga.Versor) { m.cells[m.Index(i, j, k)] = v }

// Slice returns the cells in a range, e.g. Slice(":", 0, "end").
func (m *Mapping) Slice(dimI, dimJ, dimK interface{}) (vs []cga.Versor) {
	ind := m.grid.Range(dimI, dimJ, dimK)
	vs = make([]cga.Versor, len(ind))
	for n, i := range ind {
		vs[n] = m.cells[i]
	}
	return
}

// Positions carries p by every cell and returns the images as rows of an
// N x 3 matrix in index order.
func (m *Mapping) Positions(p cga.Point) (pos *mat.Dense) {
	pos = mat.NewDense(len(m.cells), 3, nil)
	for n, v := range m.cells {
		x := p.Spin(v).Pos()
		pos.SetRow(n, []float64{x.X, x.Y, x.Z})
	}
	return
}

// wSlice holds what is shared by every cell at one w parameter.
type wSlice struct {
	wvu0     cga.Versor
	duv, dvu cga.Pair
}

func (tv *TVolume) slice(tk float64) (sl wSlice) {
	var (
		f    = tv.frames
		tf   = f[CornerOrigin]
		norm = tv.cfg.normalize
		wvu0 = cga.Boost(tv.gens[DWVU0].Scaled(tk))
		wvu1 = cga.Boost(tv.gens[DWVU1].Scaled(tk))
		wuv0 = cga.Boost(tv.gens[DWUV0].Scaled(tk))
		wuv1 = cga.Boost(tv.gens[DWUV1].Scaled(tk))
	)
	var (
		su0v = norm(tf.Suv.Spin(wvu0).Multivector)
		su1v = norm(f[CornerU].Suv.Spin(wvu1).Multivector)
		sv0u = norm(tf.Svu.Spin(wuv0).Multivector)
		sv1u = norm(f[CornerV].Svu.Spin(wuv1).Multivector)
	)
	sl.wvu0 = wvu0
	sl.duv = tv.cfg.calcGen(tf.Tu.Spin(wvu0), f[CornerU].Tu.Spin(wvu1), su0v, su1v)
	sl.dvu = tv.cfg.calcGen(tf.Tv.Spin(wuv0), f[CornerV].Tv.Spin(wuv1), sv0u, sv1u)
	return
}

func (sl wSlice) at(ti, tj float64) cga.Versor {
	var (
		uv = cga.Boost(sl.duv.Scaled(ti))
		vu = cga.Boost(sl.dvu.Scaled(tj))
	)
	return vu.Compose(uv).Compose(sl.wvu0)
}

// CalcMappingAt is the versor at parameters (ti, tj, tk) in [0,1]^3; ti runs
// along u, tj along v and tk along w.
func (tv *TVolume) CalcMappingAt(ti, tj, tk float64) cga.Versor {
	return tv.slice(tk).at(ti, tj)
}

func param(i, res int) float64 {
	if res < 2 {
		return 0
	}
	return float64(i) / float64(res-1)
}

// CalcMapping samples the volume on a grid. Cell (i,j,k) equals
// CalcMappingAt(i/(resU-1), j/(resV-1), k/(resW-1)) exactly. The w slices
// are computed concurrently.
func (tv *TVolume) CalcMapping(resU, resV, resW int) (m *Mapping, err error) {
	if resU < 1 || resV < 1 || resW < 1 {
		err = fmt.Errorf("%dx%dx%d: %w", resU, resV, resW, ErrBadResolution)
		return
	}
	m = NewMapping(resU, resV, resW)
	var (
		pm = utils.NewPartitionMap(tv.parallelDegree, resW)
		wg = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		if pm.GetBucketDimension(np) == 0 {
			continue
		}
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				sl := tv.slice(param(k, resW))
				for i := 0; i < resU; i++ {
					ti := param(i, resU)
					for j := 0; j < resV; j++ {
						m.Set(i, j, k, sl.at(ti, param(j, resV)))
					}
				}
			}
		}(np)
	}
	wg.Wait()
	return
}
