package hashfn

// ConstraintEstimate records the approximate arithmetic-circuit cost of
// proving one invocation of a hash function in a SNARK.
type ConstraintEstimate struct {
	Name        string `json:"name"`
	Constraints int    `json:"constraints"`
}

// ConstraintEstimates returns the per-hash constraint figures. These are
// literature approximations, not the output of circuit compilation, and
// do not depend on input size, iteration count, or machine.
func ConstraintEstimates() []ConstraintEstimate {
	return []ConstraintEstimate{
		{Name: "SHA-256", Constraints: 25000},
		{Name: "Keccak-256", Constraints: 150000},
		{Name: "Poseidon", Constraints: 100},
	}
}
