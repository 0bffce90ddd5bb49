package pattern

// The reference configuration: three 49-unit letter patterns laid out on a
// 7x7 grid, stored row by row.

var letterA = []float64{
	-1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1,
	-1, 1, 1, 1, 1, -1, -1,
	-1, -1, -1, -1, 1, 1, -1,
	-1, 1, 1, 1, 1, 1, -1,
	1, -1, -1, -1, 1, 1, -1,
	-1, 1, 1, 1, -1, 1, 1,
}

var letterB = []float64{
	1, 1, 1, -1, -1, -1, -1,
	-1, 1, 1, -1, -1, -1, -1,
	-1, 1, 1, -1, -1, -1, -1,
	-1, 1, 1, 1, 1, 1, -1,
	-1, 1, 1, -1, -1, -1, 1,
	-1, 1, 1, -1, -1, -1, 1,
	1, 1, -1, 1, 1, 1, -1,
}

var letterC = []float64{
	-1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1,
	-1, 1, 1, 1, 1, -1, -1,
	1, 1, -1, -1, 1, 1, -1,
	1, 1, -1, -1, -1, -1, -1,
	1, 1, -1, -1, 1, 1, -1,
	-1, 1, 1, 1, 1, -1, -1,
}

// Letters returns the reference set of memorized letter patterns 'a', 'b'
// and 'c'.
func Letters() *Set {
	set, err := NewSet(
		Stored{Name: "a", Data: letterA},
		Stored{Name: "b", Data: letterB},
		Stored{Name: "c", Data: letterC},
	)
	if err != nil {
		panic(err)
	}
	return set
}
