package bfvm

// matchForward returns the offset of the ']' closing the '[' at head.
func (v *VM) matchForward(head int) int {
	balance := 1
	i := head
	for balance > 0 {
		i++
		switch v.Code[i] {
		case '[':
			balance++
		case ']':
			balance--
		}
	}
	return i
}

// matchBackward returns the offset of the '[' opening the ']' at head.
func (v *VM) matchBackward(head int) int {
	balance := 0
	i := head
	for balance <= 0 {
		i--
		switch v.Code[i] {
		case '[':
			balance++
		case ']':
			balance--
		}
	}
	return i
}
