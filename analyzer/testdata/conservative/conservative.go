package conservative

type calc struct{ base int }

func (c *calc) add(a, b int) int { return a + b }

func square(x int) int { return x * x }

var n int

func next() int {
	n++
	return n
}

func Sum(c *calc, x, y int) int {
	return c.add(x, y) // want "Call of 'calc.add' can be inlined"
}

func Square() int {
	return square(next())
}

func Literal() int {
	return square(4) // want "Call of 'square' can be inlined"
}
