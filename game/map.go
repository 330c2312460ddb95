package game

import (
	"sort"

	"caverna/meta"
)

// Grid is a rectangular player board with positions numbered row by row.
type Grid struct {
	Columns int
	Slots   int
}

// Board is the layout of both sides of every player board.
var Board = Grid{Columns: meta.GRID_COLUMNS, Slots: meta.GRID_SLOTS}

// Neighbors returns the orthogonally adjacent positions of pos inside the grid.
func (g Grid) Neighbors(pos int) []int {
	var neighbors []int
	if pos-g.Columns >= 0 {
		neighbors = append(neighbors, pos-g.Columns)
	}
	if pos%g.Columns != 0 {
		neighbors = append(neighbors, pos-1)
	}
	if (pos+1)%g.Columns != 0 && pos+1 < g.Slots {
		neighbors = append(neighbors, pos+1)
	}
	if pos+g.Columns < g.Slots {
		neighbors = append(neighbors, pos+g.Columns)
	}
	return neighbors
}

// AreAdjacent checks if two positions share an edge.
func (g Grid) AreAdjacent(a, b int) bool {
	for _, n := range g.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// AvailableSlots returns the free positions adjacent to an occupied one, ascending.
func (g Grid) AvailableSlots(occupied []int) []int {
	taken := toSet(occupied)
	free := make(map[int]struct{})
	for _, pos := range occupied {
		for _, n := range g.Neighbors(pos) {
			if _, ok := taken[n]; !ok {
				free[n] = struct{}{}
			}
		}
	}
	return sortedKeys(free)
}

// AvailablePairSlots returns adjacent free pairs (low, high) where at least one member
// touches an occupied position, ordered by low then high.
func (g Grid) AvailablePairSlots(occupied []int) [][2]int {
	taken := toSet(occupied)
	pairs := make(map[[2]int]struct{})
	for _, first := range g.AvailableSlots(occupied) {
		for _, second := range g.Neighbors(first) {
			if _, ok := taken[second]; ok {
				continue
			}
			pair := [2]int{min(first, second), max(first, second)}
			pairs[pair] = struct{}{}
		}
	}
	out := make([][2]int, 0, len(pairs))
	for p := range pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

func toSet(positions []int) map[int]struct{} {
	set := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		set[p] = struct{}{}
	}
	return set
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
