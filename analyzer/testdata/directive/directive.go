package directive

//go:fix inline
func double(x int) int { return 2 * x }

func triple(x int) int { return 3 * x }

func Two(x int) int {
	return double(x) // want "Call of 'double' can be inlined"
}

func Three(x int) int {
	return triple(x)
}
