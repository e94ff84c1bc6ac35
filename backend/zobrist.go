package main

// ZobristTable holds one random key per (cell, colour) plus one per search
// window centre. Empty cells hash to zero so an empty board has key 0.
type ZobristTable struct {
	cells   [BoardSize * BoardSize * 2]uint64
	centers [BoardSize * BoardSize]uint64
	noFocus uint64
}

var zobrist = newZobristTable(0x9e3779b97f4a7c15 ^ BoardSize)

func newZobristTable(seed uint64) *ZobristTable {
	rng := splitmix64{state: seed}
	table := &ZobristTable{}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	for i := range table.centers {
		table.centers[i] = rng.next()
	}
	table.noFocus = rng.next()
	return table
}

func (z *ZobristTable) stone(idx int, cell Cell) uint64 {
	switch cell {
	case CellBlack:
		return z.cells[idx*2]
	case CellWhite:
		return z.cells[idx*2+1]
	default:
		return 0
	}
}

// window keys the candidate window a leaf was evaluated under.
func (z *ZobristTable) window(center Move, hasCenter bool) uint64 {
	if !hasCenter {
		return z.noFocus
	}
	return z.centers[index(center.X, center.Y)]
}

// ComputeHash rebuilds a board key from scratch.
func ComputeHash(board *Board) uint64 {
	var hash uint64
	for idx, cell := range board.cells {
		hash ^= zobrist.stone(idx, cell)
	}
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
