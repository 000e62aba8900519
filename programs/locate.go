package programs

import "fmt"

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("Line %d:%d", p.Line, p.Column)
}

// Locate maps an offset in code to a 1-based line and column.
// Newlines strictly before offset are counted.
func Locate(code []byte, offset int) Position {
	pos := Position{
		Line:   1,
		Column: 1,
	}
	offset = min(offset, len(code))
	for i := 0; i < offset; i++ {
		if code[i] == '\n' {
			pos.Line++
			pos.Column = 1
			continue
		}
		pos.Column++
	}
	return pos
}
