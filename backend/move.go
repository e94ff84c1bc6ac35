package main

import "fmt"

type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (m Move) IsValid() bool {
	return InBounds(m.X, m.Y)
}

func (m Move) Step(dir Direction, n int) Move {
	return Move{X: m.X + dir.DX*n, Y: m.Y + dir.DY*n}
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.X, m.Y)
}
