package seedfill

import "fmt"

// Connectivity selects which neighbors count as adjacent.
type Connectivity int

const (
	// Conn4 uses the orthogonal neighbors only.
	Conn4 Connectivity = 4

	// Conn8 uses the orthogonal and diagonal neighbors.
	Conn8 Connectivity = 8
)

// IsValid returns true for Conn4 and Conn8.
func (c Connectivity) IsValid() bool {
	return c == Conn4 || c == Conn8
}

// String returns a string representation of the connectivity.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4-connected"
	case Conn8:
		return "8-connected"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

func (c Connectivity) validate() error {
	if !c.IsValid() {
		return fmt.Errorf("%w: got %d", ErrInvalidConnectivity, int(c))
	}
	return nil
}
