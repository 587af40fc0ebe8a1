package space

import "strconv"

// #region enum

// Enum is an ordered, fixed-size sequence of distinct labels. A scalar in
// this domain is an index into the sequence; index 0 is the origin.
type Enum struct {
	labels []string
}

// NewEnum validates and builds a cyclic enumeration domain. Returns
// *InvalidDomainError when labels is empty or contains duplicates.
func NewEnum(labels []string) (Enum, error) {
	if len(labels) == 0 {
		return Enum{}, &InvalidDomainError{Reason: "enumeration needs at least one label"}
	}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return Enum{}, &InvalidDomainError{Reason: "duplicate label " + strconv.Quote(l)}
		}
		seen[l] = struct{}{}
	}
	ls := make([]string, len(labels))
	copy(ls, labels)
	return Enum{labels: ls}, nil
}

// Origin returns index 0, the first label.
func (e Enum) Origin() int {
	return 0
}

// Contains reports whether i indexes a label.
func (e Enum) Contains(i int) bool {
	return i >= 0 && i < len(e.labels)
}

// Next advances i one step with wraparound: the index after the last label
// is 0 again.
func (e Enum) Next(i int) int {
	return (i + 1) % len(e.labels)
}

// Len returns the number of labels.
func (e Enum) Len() int {
	return len(e.labels)
}

// Label returns the label at index i. Out-of-range indices render as the raw
// index in brackets; displaying a corrupted scalar must not panic.
func (e Enum) Label(i int) string {
	if !e.Contains(i) {
		return "[" + strconv.Itoa(i) + "]"
	}
	return e.labels[i]
}

// Labels returns the label sequence in order.
func (e Enum) Labels() []string {
	out := make([]string, len(e.labels))
	copy(out, e.labels)
	return out
}

// #endregion enum

// #region cyclic-space

// CyclicEnumSpace realizes StateSpace over a cyclic enumeration: each basis
// element holds one index into the label sequence, Update advances the index
// one step with wraparound, and there is no superposition to collapse.
type CyclicEnumSpace struct {
	state State[int]
	enum  Enum
}

var _ StateSpace = (*CyclicEnumSpace)(nil)

// NewCyclicEnum constructs a space where every basis element starts at the
// first label (the origin state). Returns *InvalidDomainError for an
// unusable label list.
func NewCyclicEnum(elements []string, labels []string) (*CyclicEnumSpace, error) {
	enum, err := NewEnum(labels)
	if err != nil {
		return nil, err
	}
	return &CyclicEnumSpace{
		state: NewState[int](elements, enum),
		enum:  enum,
	}, nil
}

// RestoreCyclicEnum rebuilds a space from a persisted snapshot. Scalars are
// not range-checked on restore; Check reports out-of-range indices instead.
func RestoreCyclicEnum(elements []string, labels []string, scalars []int) (*CyclicEnumSpace, error) {
	enum, err := NewEnum(labels)
	if err != nil {
		return nil, err
	}
	st, err := RestoreState[int](elements, scalars)
	if err != nil {
		return nil, err
	}
	return &CyclicEnumSpace{state: st, enum: enum}, nil
}

// Check reports whether every element's index is inside [0, N). The update
// rule is closed over that range, so a false result means the scalar mapping
// was corrupted outside Update. Check is a safety net, not a gate that
// Update consults.
func (s *CyclicEnumSpace) Check() bool {
	return s.state.CheckAll(s.enum)
}

// Update advances the named element's index one step with wraparound. This
// is the sole mutation path.
func (s *CyclicEnumSpace) Update(selector string) error {
	i, ok := s.state.Get(selector)
	if !ok {
		return &UnknownBasisElementError{Selector: selector}
	}
	return s.state.Set(selector, s.enum.Next(i))
}

// Resolve is a documented no-op, not an omission: one index per basis
// element is already a definite state, so there is nothing to collapse.
func (s *CyclicEnumSpace) Resolve() Resolution {
	return NoCollapse()
}

// Enum returns the enumeration domain of this space.
func (s *CyclicEnumSpace) Enum() Enum {
	return s.enum
}

// Index returns the current index of the named element.
func (s *CyclicEnumSpace) Index(name string) (int, bool) {
	return s.state.Get(name)
}

// Label returns the label at the named element's current index.
func (s *CyclicEnumSpace) Label(name string) (string, bool) {
	i, ok := s.state.Get(name)
	if !ok {
		return "", false
	}
	return s.enum.Label(i), true
}

// Collection accessors delegate to the shared core.

func (s *CyclicEnumSpace) Elements() []string {
	return s.state.Elements()
}

func (s *CyclicEnumSpace) Contains(name string) bool {
	return s.state.Contains(name)
}

func (s *CyclicEnumSpace) Len() int {
	return s.state.Len()
}

func (s *CyclicEnumSpace) Cmp(other Sized) int {
	return s.state.Cmp(other)
}

// Scalars returns the current indices in construction order.
func (s *CyclicEnumSpace) Scalars() []int {
	return s.state.Scalars()
}

// String renders the superposition in construction order as
// "<label><name> + ...", e.g. "state0<e1> + state1<e2>".
func (s *CyclicEnumSpace) String() string {
	return s.state.Render(s.enum.Label)
}

// #endregion cyclic-space
