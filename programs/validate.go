package programs

// Validate checks bracket balance.
// Only the earliest unmatched ']' is reported.
func Validate(p *Program) error {
	balance := 0
	for i, c := range p.Code {
		switch c {
		case '[':
			balance++
		case ']':
			balance--
		}
		if balance < 0 {
			return &SyntaxError{
				Kind:     UnmatchedClose,
				Offset:   i,
				Position: p.Locate(i),
			}
		}
	}
	if balance > 0 {
		return &SyntaxError{
			Kind:   UnmatchedOpen,
			Offset: -1,
		}
	}
	return nil
}
