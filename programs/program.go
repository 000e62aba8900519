package programs

// Program is a loaded instruction buffer.
// In debug mode Code holds the source verbatim, so line and column numbers stay meaningful.
type Program struct {
	Code  []byte
	Debug bool
}

const Breakpoint = '*'

func IsInstruction(c byte) bool {
	switch c {
	case '>', '<', '+', '-', '.', ',', '[', ']':
		return true
	}
	return false
}

func (p *Program) Len() int {
	return len(p.Code)
}

func (p *Program) Locate(offset int) Position {
	return Locate(p.Code, offset)
}
