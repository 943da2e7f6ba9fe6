package utils

import (
	"strconv"
	"strings"
)

type R1 struct {
	Max int
}

func NewR1(imax int) R1 {
	return R1{imax}
}

func (r R1) Range(dimI interface{}) (I Index) {
	var (
		i1, i2 = ParseDim(dimI, r.Max)
	)
	I = NewIndex(i2 - i1)
	for i := range I {
		I[i] = i1 + i
	}
	return
}

// R3 addresses a row major i,j,k grid, k varying fastest.
type R3 struct {
	Ir, Jr, Kr R1
}

func NewR3(imax, jmax, kmax int) R3 {
	return R3{
		NewR1(imax),
		NewR1(jmax),
		NewR1(kmax),
	}
}

func (r R3) Size() int { return r.Ir.Max * r.Jr.Max * r.Kr.Max }

func (r R3) Index(i, j, k int) int {
	return k + r.Kr.Max*(j+r.Jr.Max*i) // Row Major
}

func (r R3) IJK(ind int) (i, j, k int) {
	k = ind % r.Kr.Max
	j = (ind / r.Kr.Max) % r.Jr.Max
	i = ind / (r.Kr.Max * r.Jr.Max)
	return
}

func (r R3) Range(dimI, dimJ, dimK interface{}) (I Index) {
	var (
		i1, i2 = ParseDim(dimI, r.Ir.Max)
		j1, j2 = ParseDim(dimJ, r.Jr.Max)
		k1, k2 = ParseDim(dimK, r.Kr.Max)
	)
	size := (i2 - i1) * (j2 - j1) * (k2 - k1)
	if size <= 0 {
		return Index{}
	}
	I = NewIndex(size)
	var ind int
	for i := i1; i < i2; i++ {
		for j := j1; j < j2; j++ {
			for k := k1; k < k2; k++ {
				I[ind] = r.Index(i, j, k)
				ind++
			}
		}
	}
	return
}

func ParseDim(dimI interface{}, max int) (i1, i2 int) {
	/*
		Converts phrases including:
			":"   = full range, from 0 to max (loop indexing)
			"end" = last index, from max-1, max
			"N"   = middle index, from N, N+1
		   	N     = middle index, from N, N+1
		    "2:N" = range, from 2 to N (loop indexing)
		   	":N"  = range, from 0 to N (loop indexing)
		   	"N:"  = range, from N to max (loop indexing)
	*/
	switch dim := dimI.(type) {
	case string:
		switch dim {
		case "end":
			i1, i2 = max-1, max
		case ":":
			i1, i2 = 0, max
		default:
			i1, i2 = parseRange(dim, max)
		}
	case int:
		i1, i2 = dim, dim+1
	}
	if i2 > max {
		i2 = max
	}
	return
}

func parseRange(dim string, max int) (i1, i2 int) {
	var (
		splits = strings.Split(dim, ":")
		err    error
	)
	if i1, err = strconv.Atoi(strings.TrimSpace(splits[0])); err != nil {
		i1 = 0
	}
	if len(splits) == 1 {
		i2 = i1 + 1
		return
	}
	if i2, err = strconv.Atoi(strings.TrimSpace(splits[1])); err != nil {
		i2 = max
	}
	if i2 == i1 {
		i2 = i1 + 1
	}
	return
}
