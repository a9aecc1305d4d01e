package manifest

import "github.com/google/go-cmp/cmp"

// Structural-equality predicates for the state differ (spec.md §4.9, §6,
// §9). Each is grounded on `cmp.Equal` from `github.com/google/go-cmp`
// rather than hand-rolled field comparisons — go-cmp is the structural
// diffing library several pack repos depend on for this exact shape of
// "are these two typed values the same" question (see SPEC_FULL.md §4.9).

func configEqual(a, b map[string]any) bool {
	return cmp.Equal(a, b)
}

// --- Model ---

func (m Model) SameBody(old Node) bool {
	o, ok := old.(Model)
	if !ok {
		return false
	}
	return m.RawCode == o.RawCode
}

func (m Model) SameConfig(old Node) bool {
	o, ok := old.(Model)
	if !ok {
		return false
	}
	return configEqual(m.Cfg, o.Cfg)
}

func (m Model) SamePersistedDescription(old Node) bool {
	o, ok := old.(Model)
	if !ok {
		return false
	}
	return m.Description == o.Description && cmp.Equal(m.ColumnDescriptions, o.ColumnDescriptions)
}

// SameDatabaseRepresentation compares the resolved relation identity.
func (m Model) SameDatabaseRepresentation(old Node) bool {
	o, ok := old.(Model)
	if !ok {
		return false
	}
	return m.Database == o.Database && m.Schema == o.Schema && m.Alias == o.Alias
}

func (m Model) SameContract(old Node, adapterType string) bool {
	o, ok := old.(Model)
	if !ok {
		return false
	}
	if m.ContractEnforced != o.ContractEnforced {
		return false
	}
	if !m.ContractEnforced {
		return true
	}
	return m.ContractChecksum == o.ContractChecksum
}

func (m Model) SameContractRemoved() bool {
	return !m.ContractEnforced
}

func (m Model) SameContentsAdapter(old Node, adapterType string) bool {
	o, ok := old.(Model)
	if !ok {
		return false
	}
	return m.SameBody(o) && m.SameConfig(o) && m.SamePersistedDescription(o) && m.SameDatabaseRepresentation(o)
}

// --- Source ---

func (s Source) SameContents(old Node) bool {
	o, ok := old.(Source)
	if !ok {
		return false
	}
	return s.SourceName == o.SourceName &&
		s.Database == o.Database && s.Schema == o.Schema && s.Identifier == o.Identifier &&
		configEqual(s.Cfg, o.Cfg)
}

func (s Source) SameDatabaseRepresentation(old Node) bool {
	o, ok := old.(Source)
	if !ok {
		return false
	}
	return s.Database == o.Database && s.Schema == o.Schema && s.Identifier == o.Identifier
}

// --- GenericTest ---

func (t GenericTest) SameBody(old Node) bool {
	o, ok := old.(GenericTest)
	if !ok {
		return false
	}
	return t.RawCode == o.RawCode
}

func (t GenericTest) SameConfig(old Node) bool {
	o, ok := old.(GenericTest)
	if !ok {
		return false
	}
	return configEqual(t.Cfg, o.Cfg)
}

func (t GenericTest) SameContentsAdapter(old Node, adapterType string) bool {
	o, ok := old.(GenericTest)
	if !ok {
		return false
	}
	return t.SameBody(o) && t.SameConfig(o) && t.TestMetadataName == o.TestMetadataName
}

// --- SingularTest ---

func (t SingularTest) SameBody(old Node) bool {
	o, ok := old.(SingularTest)
	if !ok {
		return false
	}
	return t.RawCode == o.RawCode
}

func (t SingularTest) SameConfig(old Node) bool {
	o, ok := old.(SingularTest)
	if !ok {
		return false
	}
	return configEqual(t.Cfg, o.Cfg)
}

func (t SingularTest) SameContentsAdapter(old Node, adapterType string) bool {
	o, ok := old.(SingularTest)
	if !ok {
		return false
	}
	return t.SameBody(o) && t.SameConfig(o)
}

// --- UnitTest ---

func (u UnitTest) SameContents(old Node) bool {
	o, ok := old.(UnitTest)
	if !ok {
		return false
	}
	return configEqual(u.Cfg, o.Cfg)
}

// --- Exposure / Metric / SemanticModel / SavedQuery ---

func (e Exposure) SameContents(old Node) bool {
	o, ok := old.(Exposure)
	if !ok {
		return false
	}
	return configEqual(e.Cfg, o.Cfg)
}

func (m Metric) SameContents(old Node) bool {
	o, ok := old.(Metric)
	if !ok {
		return false
	}
	return configEqual(m.Cfg, o.Cfg)
}

func (s SemanticModel) SameContents(old Node) bool {
	o, ok := old.(SemanticModel)
	if !ok {
		return false
	}
	return configEqual(s.Cfg, o.Cfg)
}

func (s SavedQuery) SameContents(old Node) bool {
	o, ok := old.(SavedQuery)
	if !ok {
		return false
	}
	return configEqual(s.Cfg, o.Cfg)
}
