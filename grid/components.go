package grid

import "gonum.org/v1/gonum/spatial/r2"

// neighborOffsets is the von Neumann neighborhood: up, left, right, down.
// Components are 4-connected by definition; diagonal contact never joins.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// components flood-fills every maximal 4-connected same-color region.
// Each cell is visited exactly once; the scan runs left-to-right within a
// top-to-bottom pass, so component order is deterministic. There is no
// minimum-size filter: isolated cells and the background color yield
// components like any other region.
//
// Time: O(R×C×4), Memory: O(R×C) for visited flags and output.
func components(cells [][]int) []Component {
	rows, cols := len(cells), len(cells[0])
	seen := make([]bool, rows*cols)
	var comps []Component

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if seen[r*cols+c] {
				continue
			}
			comps = append(comps, fill(cells, seen, r, c))
		}
	}

	return comps
}

// fill runs one BFS flood fill from seed (r0, c0), collecting the member
// cells, bounding box, and centroid of the region in a single pass.
func fill(cells [][]int, seen []bool, r0, c0 int) Component {
	rows, cols := len(cells), len(cells[0])
	color := cells[r0][c0]

	comp := Component{
		Color:  color,
		Bounds: Bounds{MinRow: r0, MinCol: c0, MaxRow: r0, MaxCol: c0},
	}
	var sumRow, sumCol float64

	seen[r0*cols+c0] = true
	queue := [][2]int{{r0, c0}}
	for qi := 0; qi < len(queue); qi++ {
		ur, uc := queue[qi][0], queue[qi][1]
		comp.Cells = append(comp.Cells, queue[qi])
		sumRow += float64(ur)
		sumCol += float64(uc)

		if ur < comp.Bounds.MinRow {
			comp.Bounds.MinRow = ur
		}
		if ur > comp.Bounds.MaxRow {
			comp.Bounds.MaxRow = ur
		}
		if uc < comp.Bounds.MinCol {
			comp.Bounds.MinCol = uc
		}
		if uc > comp.Bounds.MaxCol {
			comp.Bounds.MaxCol = uc
		}

		for _, d := range neighborOffsets {
			vr, vc := ur+d[0], uc+d[1]
			if vr < 0 || vr >= rows || vc < 0 || vc >= cols {
				continue
			}
			if cells[vr][vc] != color {
				continue
			}
			vi := vr*cols + vc
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, [2]int{vr, vc})
			}
		}
	}

	comp.Size = len(comp.Cells)
	comp.Centroid = r2.Vec{
		X: sumCol / float64(comp.Size),
		Y: sumRow / float64(comp.Size),
	}

	return comp
}
