package space

// #region report

// ElementReport is one basis element's row in an audit.
type ElementReport struct {
	Name  string
	Index int
	Label string
	Valid bool
}

// Report is the per-element elaboration of Check. Advisory and diagnostic:
// producing a report never mutates state.
type Report struct {
	Passed   bool
	Elements []ElementReport
}

// #endregion report

// #region audit

// Audit walks the basis in construction order and reports every element's
// index, label and domain validity. Passed mirrors Check.
func (s *CyclicEnumSpace) Audit() Report {
	rep := Report{Passed: true}
	for _, name := range s.state.elements {
		i := s.state.scalars[name]
		valid := s.enum.Contains(i)
		if !valid {
			rep.Passed = false
		}
		rep.Elements = append(rep.Elements, ElementReport{
			Name:  name,
			Index: i,
			Label: s.enum.Label(i),
			Valid: valid,
		})
	}
	return rep
}

// #endregion audit
