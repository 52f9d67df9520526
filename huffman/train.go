package huffman

import (
	"cmp"
	"fmt"
	"slices"
)

// SymbolWeight is one training entry.
type SymbolWeight struct {
	Symbol string
	Weight uint64
}

// Train counts the occurrences of every symbol in corpus and trains a tree
// on the counts. Symbols are ranked by first occurrence among equal counts.
func Train(corpus []string) (*Tree, error) {
	index := make(map[string]int)
	var weights []SymbolWeight
	for _, s := range corpus {
		if i, ok := index[s]; ok {
			weights[i].Weight++
			continue
		}
		index[s] = len(weights)
		weights = append(weights, SymbolWeight{Symbol: s, Weight: 1})
	}

	return TrainWeights(weights)
}

// TrainCounts trains a tree on a symbol to weight map. Symbols with equal
// weights are ranked by their string form, so the result is deterministic.
func TrainCounts(counts map[string]uint64) (*Tree, error) {
	weights := make([]SymbolWeight, 0, len(counts))
	for s, w := range counts {
		weights = append(weights, SymbolWeight{Symbol: s, Weight: w})
	}
	slices.SortFunc(weights, func(a, b SymbolWeight) int {
		return cmp.Compare(a.Symbol, b.Symbol)
	})

	return TrainWeights(weights)
}

// TrainWeights runs the greedy Huffman construction.
//
// Nodes are kept sorted by decreasing weight, equal weights in input order.
// The two lightest nodes are repeatedly removed and merged, the lighter one
// becoming the left (0) child, and the merged node is inserted before the
// first node that is not heavier than it. The last node left is the root.
// Zero weights are allowed.
func TrainWeights(weights []SymbolWeight) (*Tree, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyCorpus
	}

	t := newTree(2*len(weights) - 1)
	seen := make(map[string]struct{}, len(weights))
	queue := make([]int, 0, len(weights))
	for _, w := range weights {
		if _, ok := seen[w.Symbol]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, w.Symbol)
		}
		seen[w.Symbol] = struct{}{}
		queue = append(queue, t.addLeaf(w.Symbol, w.Weight))
	}

	slices.SortStableFunc(queue, func(a, b int) int {
		return cmp.Compare(t.nodes[b].Weight, t.nodes[a].Weight)
	})

	for len(queue) > 1 {
		worst := queue[len(queue)-1]
		second := queue[len(queue)-2]
		queue = queue[:len(queue)-2]

		merged := t.addInternal(worst, second)
		weight := t.nodes[merged].Weight

		at := 0
		for at < len(queue) && weight < t.nodes[queue[at]].Weight {
			at++
		}
		queue = slices.Insert(queue, at, merged)
	}
	t.root = queue[0]

	return t, nil
}
