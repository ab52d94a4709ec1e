package meshfile

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

// field parses fields[i] as T, throwing if it is missing or malformed.
func field[T number](fields []string, i int, what string) T {
	if i >= len(fields) {
		throwf("missing %s (field %d)", what, i+1)
	}
	return parseNumber[T](fields[i], what)
}

// optionalField is like field, but a missing field reads as the zero value.
func optionalField[T number](fields []string, i int, what string) T {
	if i >= len(fields) {
		var zero T
		return zero
	}
	return parseNumber[T](fields[i], what)
}

func parseNumber[T number](s string, what string) T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			throwf("invalid %s %q", what, s)
		}
		return T(v)
	default:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			throwf("invalid %s %q", what, s)
		}
		return T(v)
	}
}

// count reads the declared record count from a header line.
func count(fields []string, what string) int {
	n := field[int](fields, 0, what)
	if n < 0 {
		throwf("negative %s %d", what, n)
	}
	return n
}

// checkSequence throws a SequenceMismatchError unless the record's leading
// index is the expected 1-based position.
func checkSequence(section Section, fields []string, expected int) {
	found := field[int](fields, 0, "record index")
	if found != expected {
		throw(&SequenceMismatchError{Section: section, Expected: expected, Found: found})
	}
}

// parsePoint reads an [index, x, y, marker] record.
func parsePoint(section Section, fields []string, expected int) Point {
	checkSequence(section, fields, expected)
	return Point{
		X:      field[float64](fields, 1, "x coordinate"),
		Y:      field[float64](fields, 2, "y coordinate"),
		Marker: optionalField[int](fields, 3, "boundary marker"),
	}
}

// vertex reads a 1-based vertex reference and converts it to a zero based
// index into points.
func vertex(fields []string, i int, points *PointSet) int {
	v := field[int](fields, i, "vertex index") - 1
	if v < 0 || v >= points.Len() {
		throwf("vertex %d out of range 1..%d", v+1, points.Len())
	}
	return v
}
