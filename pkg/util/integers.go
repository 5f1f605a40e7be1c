package util

// GCD returns the greatest common divisor of two non-negative integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of all given integers, 0 when the
// list is empty. Used for hyperperiod computation over task periods.
func LCM(values ...int) int {
	if len(values) == 0 {
		return 0
	}
	result := values[0]
	for _, v := range values[1:] {
		result = result / GCD(result, v) * v
	}
	return result
}

// CeilDiv returns ceil(a / b) for positive b without going through floats.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}
