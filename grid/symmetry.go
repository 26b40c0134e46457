package grid

// symmetry evaluates the five symmetry flags by comparing each cell
// against its image under the corresponding transform. Each flag is an
// exact cell-wise equality; the transpose pair is only meaningful for
// square frames and stays false otherwise.
//
// Time: O(R×C), Memory: O(1).
func symmetry(cells [][]int) Symmetry {
	rows, cols := len(cells), len(cells[0])
	square := rows == cols

	s := Symmetry{
		Horizontal:   true,
		Vertical:     true,
		Diagonal:     square,
		AntiDiagonal: square,
		Rotation180:  true,
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := cells[r][c]
			if v != cells[r][cols-1-c] {
				s.Horizontal = false
			}
			if v != cells[rows-1-r][c] {
				s.Vertical = false
			}
			if v != cells[rows-1-r][cols-1-c] {
				s.Rotation180 = false
			}
			if square {
				// transpose maps (r,c) → (c,r); anti-diagonal maps
				// (r,c) → (n-1-c, n-1-r)
				if v != cells[c][r] {
					s.Diagonal = false
				}
				if v != cells[cols-1-c][rows-1-r] {
					s.AntiDiagonal = false
				}
			}
		}
	}

	return s
}
