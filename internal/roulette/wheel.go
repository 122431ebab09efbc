package roulette

// Color of a wheel pocket.
type Color string

const (
	Green Color = "green"
	Red   Color = "red"
	Black Color = "black"
)

// wheelSize counts the pockets on a European wheel: 0 through 36.
const wheelSize = 37

// Red pockets on a European wheel. Black is the complement within 1-36.
var redNumbers = [...]int{1, 3, 5, 7, 9, 12, 14, 16, 18, 19, 21, 23, 25, 27, 30, 32, 34, 36}

var redSet = func() map[int]bool {
	m := make(map[int]bool, len(redNumbers))
	for _, n := range redNumbers {
		m[n] = true
	}
	return m
}()

// ColorOf maps a pocket number to its color. Zero is the single green pocket.
func ColorOf(number int) Color {
	if number == 0 {
		return Green
	}
	if redSet[number] {
		return Red
	}
	return Black
}

// RedNumbers returns the red pockets in ascending order.
func RedNumbers() []int {
	out := make([]int, len(redNumbers))
	copy(out, redNumbers[:])
	return out
}

// BlackNumbers returns the black pockets in ascending order.
func BlackNumbers() []int {
	out := make([]int, 0, 18)
	for n := 1; n <= 36; n++ {
		if !redSet[n] {
			out = append(out, n)
		}
	}
	return out
}

func evenNumbers() []int {
	out := make([]int, 0, 18)
	for n := 2; n <= 36; n += 2 {
		out = append(out, n)
	}
	return out
}

func oddNumbers() []int {
	out := make([]int, 0, 18)
	for n := 1; n <= 36; n += 2 {
		out = append(out, n)
	}
	return out
}

func lowNumbers() []int {
	out := make([]int, 0, 18)
	for n := 1; n <= 18; n++ {
		out = append(out, n)
	}
	return out
}

func highNumbers() []int {
	out := make([]int, 0, 18)
	for n := 19; n <= 36; n++ {
		out = append(out, n)
	}
	return out
}
