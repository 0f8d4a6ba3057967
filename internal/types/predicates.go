package types

// Identical reports whether x and y are the same type.
func Identical(x, y Type) bool {
	return x == y
}

// Mismatch reports whether x and y conflict. An Invalid operand never
// conflicts, so an error already reported where it was produced is not
// reported again.
func Mismatch(x, y Type) bool {
	return !Identical(x, y) && x != Invalid && y != Invalid
}
