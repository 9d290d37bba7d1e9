package a

import "fmt"

type calc struct{ base int }

func (c *calc) add(a, b int) int { return a + b }

func (c *calc) offset(v int) int { return c.base + v }

func (c *calc) logf(format string, args ...int) { fmt.Printf(format, len(args)) }

func (c *calc) twice(a int) int { return func() int { a++; return a }() }

func square(x int) int { return x * x }

var n int

func next() int {
	n++
	return n
}

// Exported functions are not inlined.
func (c *calc) Exported(a int) int { return a }

func Sum(c *calc, x, y int) int {
	return c.add(x, y) // want "Call of 'calc.add' can be inlined"
}

func Scaled(c *calc, x, y int) int {
	return 2 * c.add(x, y) // want "Call of 'calc.add' can be inlined"
}

func Offset(c *calc) int {
	return c.offset(3) // want "Call of 'calc.offset' can be inlined"
}

func Square() int {
	return square(next()) // want "Call of 'square' can be inlined"
}

func Log(c *calc) {
	c.logf("%d\n", c.base, 2) // want "Call of 'calc.logf' can be inlined"
}

func Twice(c *calc, a int) int {
	return c.twice(a) // want "Call of 'calc.twice' can be inlined"
}

func Other(c *calc) int {
	return c.Exported(1)
}

func Quiet(c *calc, x int) int {
	return c.add(x, x) //nolint:inlinecall
}

//nolint:inlinecall
func Silenced(c *calc, x int) int {
	return c.add(x, x)
}
