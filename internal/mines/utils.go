package mines

import "fmt"

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// celltodo is the work list used by flood fill.
type celltodo struct {
	stack []Point
}

func (td *celltodo) push(p Point) {
	td.stack = append(td.stack, p)
}

func (td *celltodo) pop() (Point, bool) {
	if len(td.stack) == 0 {
		return Point{}, false
	}
	p := td.stack[len(td.stack)-1]
	td.stack = td.stack[:len(td.stack)-1]
	return p, true
}
