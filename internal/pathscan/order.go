package pathscan

import "fmt"

// Order is the sequence in which search-path directories are visited.
type Order int

const (
	// Reverse visits the last directory first.
	Reverse Order = iota
	Forward
)

func (o Order) String() string {
	switch o {
	case Reverse:
		return "reverse"
	case Forward:
		return "forward"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder accepts "reverse" or "forward". The empty string means Reverse.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "reverse":
		return Reverse, nil
	case "forward":
		return Forward, nil
	default:
		return Reverse, fmt.Errorf("unknown order %q (want reverse or forward)", s)
	}
}
