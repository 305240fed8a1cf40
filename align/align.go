//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//

// Package align implements longest common token sequence alignment.
//
// The longest common token sequence is the classic longest common
// subsequence computed over ordered sequences of opaque comparable tokens:
// matched tokens keep their relative order in both inputs but need not be
// adjacent in either.
package align

// Length returns the length of the longest common token sequence of left and right.
// Empty inputs yield 0. Length runs in O(n*m) time and O(m) space.
func Length[T comparable](left, right []T) int {
	if len(left) == 0 || len(right) == 0 {
		return 0
	}
	prev := make([]int, len(right)+1)
	curr := make([]int, len(right)+1)
	for i := 1; i <= len(left); i++ {
		curr[0] = 0
		for j := 1; j <= len(right); j++ {
			if left[i-1] == right[j-1] {
				curr[j] = prev[j-1] + 1
				continue
			}
			if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(right)]
}

// Pair links the index of a matched token in the left sequence to the index
// it matched in the right sequence.
type Pair struct {
	// Left is the index of the matched token in the left sequence.
	Left int
	// Right is the index of the matched token in the right sequence.
	Right int
}

// Pairs returns the matched index pairs of one longest common token sequence,
// ascending in both components. len(Pairs(left, right)) equals Length(left, right).
func Pairs[T comparable](left, right []T) []Pair {
	return backtrack(table(left, right), left, right)
}

// Indices returns the indices into left of one longest common token sequence,
// in ascending order.
func Indices[T comparable](left, right []T) []int {
	pairs := Pairs(left, right)
	indices := make([]int, 0, len(pairs))
	for _, p := range pairs {
		indices = append(indices, p.Left)
	}
	return indices
}

// table builds the dynamic programming table for alignment reconstruction.
func table[T comparable](left, right []T) [][]int {
	rows := len(left)
	cols := len(right)
	table := make([][]int, rows+1)
	for i := range table {
		table[i] = make([]int, cols+1)
	}
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			if left[i-1] == right[j-1] {
				table[i][j] = table[i-1][j-1] + 1
				continue
			}
			if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table
}

// backtrack reconstructs a single alignment from the table without recursion.
func backtrack[T comparable](table [][]int, left, right []T) []Pair {
	i := len(left)
	j := len(right)
	pairs := make([]Pair, 0, table[i][j])
	for i > 0 && j > 0 {
		if left[i-1] == right[j-1] {
			pairs = append(pairs, Pair{Left: i - 1, Right: j - 1})
			i--
			j--
		} else if table[i][j-1] > table[i-1][j] {
			j--
		} else {
			i--
		}
	}
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}
	return pairs
}
