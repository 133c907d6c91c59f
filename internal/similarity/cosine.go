// Package similarity computes cosine similarity between term vectors.
package similarity

import (
	"errors"
	"math"
	"sort"
)

// ErrDegenerateVector is returned by CosineStrict when either vector has zero
// magnitude, which happens for sentences with no tokens left after cleaning.
var ErrDegenerateVector = errors.New("degenerate vector: zero magnitude")

// CosineStrict returns dot(a, b) / (|a| |b|) or ErrDegenerateVector.
func CosineStrict(a, b []float64) (float64, error) {
	na, nb := norm(a), norm(b)
	if na == 0 || nb == 0 {
		return 0, ErrDegenerateVector
	}
	return dot(a, b) / (na * nb), nil
}

// Cosine is CosineStrict with similarity against a zero vector defined as 0,
// including the similarity of a zero vector with itself.
func Cosine(a, b []float64) float64 {
	v, err := CosineStrict(a, b)
	if err != nil {
		return 0
	}
	return v
}

// Matrix returns the full pairwise cosine similarity matrix. Rows of zero
// vectors are all zero, diagonal included.
func Matrix(vectors [][]float64) [][]float64 {
	n := len(vectors)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := Cosine(vectors[i], vectors[j])
			m[i][j] = s
			m[j][i] = s
		}
	}
	return m
}

// RowSums returns the sum of every row of m.
func RowSums(m [][]float64) []float64 {
	sums := make([]float64, len(m))
	for i, row := range m {
		for _, v := range row {
			sums[i] += v
		}
	}
	return sums
}

// ArgsortAscending returns the indexes of vals ordered by ascending value.
// Equal values keep their original relative order.
func ArgsortAscending(vals []float64) []int {
	idxs := make([]int, len(vals))
	for i := range vals {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(i, j int) bool { return vals[idxs[i]] < vals[idxs[j]] })
	return idxs
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}
