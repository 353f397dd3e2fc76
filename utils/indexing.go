package utils

import "fmt"

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Copy() (R Index) {
	R = make(Index, len(I))
	copy(R, I)
	return
}

func (I Index) Max() (max int) {
	for _, val := range I {
		if val > max {
			max = val
		}
	}
	return
}

func (I Index) Min() (min int) {
	if len(I) == 0 {
		return
	}
	min = I[0]
	for _, val := range I {
		if val < min {
			min = val
		}
	}
	return
}

func (I Index) Contains(val int) bool {
	for _, v := range I {
		if v == val {
			return true
		}
	}
	return false
}

// Union concatenates J onto I, dropping duplicates, preserving first-seen order.
func (I Index) Union(J Index) (R Index) {
	seen := make(map[int]struct{}, len(I)+len(J))
	for _, v := range I {
		if _, exists := seen[v]; !exists {
			seen[v] = struct{}{}
			R = append(R, v)
		}
	}
	for _, v := range J {
		if _, exists := seen[v]; !exists {
			seen[v] = struct{}{}
			R = append(R, v)
		}
	}
	return
}

func (I Index) ValidateRange(min, max int) (err error) {
	for _, val := range I {
		if val < min || val > max {
			err = fmt.Errorf("index %d out of range [%d,%d]", val, min, max)
			return
		}
	}
	return
}
