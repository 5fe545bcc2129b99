package ncbi

import (
	"fmt"
	"strconv"
	"strings"
)

// EffectKind tells what a names.dmp row does to its record.
type EffectKind int

const (
	// None rows are only recorded in the type catalog.
	None EffectKind = iota
	// Primary rows are candidates for the record's Name.
	Primary
	// Synonym rows are appended to Synonyms.
	Synonym
	// Vernacular rows are appended to Vernacular.
	Vernacular
)

var kindNames = map[EffectKind]string{
	None:       "none",
	Primary:    "primary",
	Synonym:    "synonym",
	Vernacular: "vernacular",
}

func (k EffectKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EffectKind(%d)", int(k))
}

// Effect is the merge rule of one classification label.
type Effect struct {
	Kind EffectKind
	// Priority orders primary candidates, higher wins. It is ignored for
	// other kinds.
	Priority int
}

func (e Effect) String() string {
	if e.Kind == Primary {
		return fmt.Sprintf("primary:%d", e.Priority)
	}
	return e.Kind.String()
}

// ParseEffect converts a textual effect from configuration.
// Accepted values: "primary" (priority 1), "primary:<n>" with positive n,
// "synonym", "vernacular", "none".
func ParseEffect(s string) (Effect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "none":
		return Effect{Kind: None}, nil
	case "synonym":
		return Effect{Kind: Synonym}, nil
	case "vernacular":
		return Effect{Kind: Vernacular}, nil
	case "primary":
		return Effect{Kind: Primary, Priority: 1}, nil
	}

	if p, ok := strings.CutPrefix(s, "primary:"); ok {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return Effect{}, fmt.Errorf("bad primary priority %q", p)
		}
		return Effect{Kind: Primary, Priority: n}, nil
	}
	return Effect{}, fmt.Errorf("unknown name class effect %q", s)
}

// ClassTable maps names.dmp classification labels to their effects.
type ClassTable map[string]Effect

// DefaultClasses returns the table for the 13 labels known in the NCBI
// dump. A scientific name outranks an authority.
func DefaultClasses() ClassTable {
	return ClassTable{
		"scientific name":     {Kind: Primary, Priority: 2},
		"authority":           {Kind: Primary, Priority: 1},
		"synonym":             {Kind: Synonym},
		"equivalent name":     {Kind: Synonym},
		"misnomer":            {Kind: Synonym},
		"misspelling":         {Kind: Synonym},
		"common name":         {Kind: Vernacular},
		"genbank common name": {Kind: Vernacular},
		"acronym":             {Kind: None},
		"in-part":             {Kind: None},
		"includes":            {Kind: None},
		"blast name":          {Kind: None},
		"genbank synonym":     {Kind: None},
		"genbank acronym":     {Kind: None},
		"type material":       {Kind: None},
	}
}

// Effect returns the effect of a label. Unknown labels have no effect,
// the boolean is false for them.
func (t ClassTable) Effect(label string) (Effect, bool) {
	eff, ok := t[label]
	return eff, ok
}

// WithOverrides returns a copy of the table where labels from overrides
// get new effects. Labels are matched after trimming and lower-casing.
func (t ClassTable) WithOverrides(overrides map[string]string) (ClassTable, error) {
	res := make(ClassTable, len(t)+len(overrides))
	for k, v := range t {
		res[k] = v
	}
	for label, val := range overrides {
		eff, err := ParseEffect(val)
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", label, err)
		}
		res[strings.ToLower(strings.TrimSpace(label))] = eff
	}
	return res, nil
}
