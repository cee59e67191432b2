package programs

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Canonical CBOR so the same solution always encodes to the same bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("programs: cbor enc mode: %v", err))
	}
	cborEncMode = em
}

// Solution is the machine-readable artifact of a successful search.
type Solution struct {
	Program    Program `cbor:"program"`
	Steps      int     `cbor:"steps"`
	Candidates int     `cbor:"candidates"`
}

func MarshalSolution(s *Solution) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

func UnmarshalSolution(data []byte) (*Solution, error) {
	var s Solution
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("programs: unmarshal solution: %w", err)
	}
	return &s, nil
}
