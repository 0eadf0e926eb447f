package t2048

// mergeLine slides the non-empty cells of line toward index 0 and merges
// equal neighbours once. A merged cell never merges again in the same pass.
// The result has the same length as line, padded with empty cells.
func mergeLine(line []Cell) []Cell {
	tiles := make([]Cell, 0, len(line))
	for _, c := range line {
		if !c.IsEmpty() {
			tiles = append(tiles, c)
		}
	}

	result := make([]Cell, 0, len(line))
	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i].CanMergeWith(tiles[i+1]) {
			result = append(result, tiles[i].MergedWith(tiles[i+1]))
			i++
			continue
		}
		result = append(result, tiles[i])
	}

	for len(result) < len(line) {
		result = append(result, EmptyCell())
	}
	return result
}

// linePositions returns the positions of line index i, ordered from the edge
// tiles travel toward. Vertical moves sweep a column, horizontal moves a row.
func (b *Board) linePositions(dir Direction, i int) []Position {
	out := make([]Position, b.side)
	forward := dir.RowDelta() > 0 || dir.ColumnDelta() > 0
	for k := 0; k < b.side; k++ {
		step := k
		if forward {
			step = b.side - 1 - k
		}
		if dir.IsVertical() {
			out[k] = Pos(step, i)
		} else {
			out[k] = Pos(i, step)
		}
	}
	return out
}

// slideLine applies mergeLine to one line and reports whether any cell changed.
func (b *Board) slideLine(dir Direction, i int) bool {
	positions := b.linePositions(dir, i)
	line := make([]Cell, len(positions))
	for k, p := range positions {
		line[k] = b.at(p)
	}

	changed := false
	for k, c := range mergeLine(line) {
		if c != line[k] {
			changed = true
		}
		b.set(c, positions[k])
	}
	return changed
}

// Move slides and merges every line in the direction named by r
// (N/U, S/D, W/L or E/R, case-insensitive). It does not spawn a tile.
// Returns whether the board changed.
func (b *Board) Move(r rune) (bool, error) {
	dir, err := ParseDirection(r)
	if err != nil {
		return false, err
	}
	return b.MoveDirection(dir), nil
}

// MoveDirection slides and merges every line toward dir.
func (b *Board) MoveDirection(dir Direction) bool {
	changed := false
	for i := 0; i < b.side; i++ {
		if b.slideLine(dir, i) {
			changed = true
		}
	}
	return changed
}

// Update performs Move and, if the board changed, spawns one tile.
// Returns true while the game can continue.
func (b *Board) Update(r rune) (bool, error) {
	dir, err := ParseDirection(r)
	if err != nil {
		return false, err
	}
	return b.UpdateDirection(dir), nil
}

// UpdateDirection is Update for an already parsed direction.
func (b *Board) UpdateDirection(dir Direction) bool {
	_, alive := b.Play(dir)
	return alive
}

// Play moves toward dir, spawns a tile if anything moved, and reports both
// whether the board changed and whether the game can continue.
func (b *Board) Play(dir Direction) (moved, alive bool) {
	moved = b.MoveDirection(dir)
	if moved {
		b.FillRandomEmptyCell()
	}
	return moved, !b.IsGameOver()
}

// IsGameOver reports whether the board is full and no two adjacent tiles can merge.
func (b *Board) IsGameOver() bool {
	if b.empty.len() > 0 {
		return false
	}
	for row := 0; row < b.side; row++ {
		for column := 0; column < b.side; column++ {
			p := Pos(row, column)
			cell := b.at(p)
			for _, dir := range Directions {
				n := p.Neighbor(dir)
				if !b.InBounds(n) {
					continue
				}
				// Empty cells compare equal; the full-board check above keeps them out.
				if cell.CanMergeWith(b.at(n)) {
					return false
				}
			}
		}
	}
	return true
}
