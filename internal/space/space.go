package space

// #region contract

// StateSpace is the contract every concrete scalar domain realizes: validate
// the domain invariant over all scalars, advance one scalar under the domain's
// update rule, and collapse an indeterminate combination of scalars to a
// single canonical representative.
type StateSpace interface {
	// Check reports whether every basis element's scalar is a valid member
	// of the domain. It never mutates state and never fails; a false result
	// means the scalar mapping was corrupted outside the update path.
	Check() bool

	// Update mutates the scalar of the basis element named by selector
	// according to the domain rule. Exactly one scalar changes; all others
	// are untouched. Returns *UnknownBasisElementError if selector names no
	// basis element of this instance.
	Update(selector string) error

	// Resolve collapses the full scalar mapping to a canonical
	// representative. Domains with no ambiguity return a no-collapse
	// sentinel.
	Resolve() Resolution
}

// #endregion contract

// #region resolution

// Resolution is the outcome of a Resolve call.
type Resolution struct {
	// Collapsed is false when the domain had nothing to collapse.
	Collapsed bool
	// Representative holds the canonical form when Collapsed is true.
	Representative string
}

// NoCollapse is the sentinel resolution for domains where one scalar per
// basis element is already a definite state.
func NoCollapse() Resolution {
	return Resolution{}
}

// #endregion resolution
