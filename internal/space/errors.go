package space

import "fmt"

// #region errors

// InvalidDomainError reports domain parameters that cannot define a nonempty,
// well-ordered scalar domain. Construction fails outright; no partial
// instance is returned.
type InvalidDomainError struct {
	Reason string
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("invalid domain: %s", e.Reason)
}

// UnknownBasisElementError reports a selector that names no basis element of
// the instance it was used against. The caller decides whether to retry with
// a corrected selector; nothing is clamped or defaulted.
type UnknownBasisElementError struct {
	Selector string
}

func (e *UnknownBasisElementError) Error() string {
	return fmt.Sprintf("unknown basis element %q", e.Selector)
}

// #endregion errors
