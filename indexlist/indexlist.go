// SPDX-License-Identifier: MIT
// Package: netgen/indexlist
//
// indexlist.go - ascending pool of node indices with positional selection.
//
// Model:
//   - A List holds the integers [from, to] in ascending order.
//   - Choose(k) removes and returns the k-th remaining integer (1-based).
//   - Remove(i) deletes a specific integer if present.
//   - PseudoSize is Size adjusted downward by every Remove call, including
//     calls for integers that were not present. The generator draws head
//     positions in [1, PseudoSize], so this drift is part of the output
//     contract and must not be "fixed".
//
// Representation:
//   - Lists of at most flagLimit entries use a removal bitmap.
//   - Larger lists use a lazily split interval tree, so creating a list over
//     a huge range costs O(1) and each operation costs O(depth).

package indexlist

const flagLimit = 100

// interval is one node of the interval tree. Leaves own the contiguous run
// [base, base+count); inner nodes keep the total count of their subtree and
// store the index of their left child (the right child sits at left+1).
type interval struct {
	base  int
	count int
	left  int // -1 for a leaf
}

// List is a pool of integers. It is not safe for concurrent use; each
// generation run owns its lists.
type List struct {
	size     int
	pseudo   int
	original int

	small   bool
	base    int
	removed []bool

	tree []interval
}

// New returns a List holding [from, to]. An inverted range yields an empty
// list on which Choose always returns 0.
// Complexity: O(to-from) for small lists, O(1) otherwise.
func New(from, to int) *List {
	n := to - from + 1
	if n < 0 {
		n = 0
	}
	l := &List{size: n, pseudo: n, original: n, base: from}
	if n <= flagLimit {
		l.small = true
		l.removed = make([]bool, n)
		return l
	}
	l.tree = []interval{{base: from, count: n, left: -1}}

	return l
}

// Size returns the number of integers still in the list.
func (l *List) Size() int { return l.size }

// PseudoSize returns Size minus the number of Remove calls that did not hit.
func (l *List) PseudoSize() int { return l.pseudo }

// Choose removes and returns the integer at 1-based position k.
// It returns 0 and leaves the list untouched when k is outside [1, Size].
// Complexity: O(Size) for small lists, O(depth) for large ones.
func (l *List) Choose(k int) int {
	if k < 1 || k > l.size {
		return 0
	}
	l.size--
	l.pseudo--

	if l.small {
		remaining := k
		for i, gone := range l.removed {
			if gone {
				continue
			}
			remaining--
			if remaining == 0 {
				l.removed[i] = true
				return l.base + i
			}
		}
		return 0 // unreachable: k <= size
	}

	pos, idx := k, 0
	for l.tree[idx].left >= 0 {
		l.tree[idx].count--
		left := l.tree[idx].left
		if pos > l.tree[left].count {
			pos -= l.tree[left].count
			idx = left + 1
		} else {
			idx = left
		}
	}

	l.tree[idx].count--
	leaf := l.tree[idx]
	switch {
	case pos == 1:
		l.tree[idx].base++
		return leaf.base
	case pos > leaf.count:
		return leaf.base + leaf.count
	default:
		chosen := leaf.base + pos - 1
		l.split(idx, leaf.base, pos-1, chosen+1, leaf.count-(pos-1))
		return chosen
	}
}

// Remove deletes i from the list if present. PseudoSize shrinks either way.
// Complexity: O(1) for small lists, O(depth) for large ones.
func (l *List) Remove(i int) {
	l.pseudo--

	if l.small {
		if i < l.base || i >= l.base+l.original {
			return
		}
		if off := i - l.base; !l.removed[off] {
			l.removed[off] = true
			l.size--
		}
		return
	}

	idx := 0
	var path []int
	for l.tree[idx].left >= 0 {
		path = append(path, idx)
		l.tree[idx].count--
		left := l.tree[idx].left
		if i < l.tree[left+1].base {
			idx = left
		} else {
			idx = left + 1
		}
	}

	leaf := l.tree[idx]
	if i < leaf.base || i >= leaf.base+leaf.count {
		// miss: restore the counts decremented on the way down
		for _, p := range path {
			l.tree[p].count++
		}
		return
	}

	l.tree[idx].count--
	switch {
	case i == leaf.base:
		l.tree[idx].base++
	case i == leaf.base+leaf.count-1:
		// tail of the run; the shorter count already excludes it
	default:
		l.split(idx, leaf.base, i-leaf.base, i+1, leaf.count-1-(i-leaf.base))
	}
	l.size--
}

// split turns leaf idx into an inner node with two fresh leaves.
func (l *List) split(idx, leftBase, leftCount, rightBase, rightCount int) {
	child := len(l.tree)
	l.tree = append(l.tree,
		interval{base: leftBase, count: leftCount, left: -1},
		interval{base: rightBase, count: rightCount, left: -1},
	)
	l.tree[idx].left = child
}
