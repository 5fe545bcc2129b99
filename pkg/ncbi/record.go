package ncbi

// Record aggregates everything the dump knows about one taxon.
// Fields are exported for gob encoding by the store.
type Record struct {
	// Key is the NCBI taxon id.
	Key int
	// ParentKey is nil until a node row for the taxon is seen.
	ParentKey *int
	Hidden    bool
	// Rank is empty if no node row was seen.
	Rank string
	// Name is the primary display name.
	Name string
	// NamePriority is the priority of the classification that set Name,
	// zero when Name is unset.
	NamePriority int
	Comments     string
	Synonyms     []string
	Vernacular   []string
	TypeMaterial []TypeMaterial
	Citations    []Citation
}

// TypeMaterial is a type specimen citation from typematerial.dmp.
type TypeMaterial struct {
	Citation string
	Status   string
}

// Citation is a bibliographic reference from citations.dmp.
type Citation struct {
	Citation  string
	MedlineID string
	PubmedID  string
	URL       string
}

// NewRecord creates an empty record for the key.
func NewRecord(key int) *Record {
	return &Record{Key: key}
}

// HasNode reports if the record got data from nodes.dmp.
func (r *Record) HasNode() bool {
	return r.ParentKey != nil
}

// ApplyName merges a names.dmp entry into the record according to the
// effect of its classification.
//
// A primary name replaces the current one only if its priority is strictly
// higher than the priority that set the current name.
func (r *Record) ApplyName(name string, eff Effect) {
	switch eff.Kind {
	case Primary:
		if eff.Priority > r.NamePriority {
			r.Name = name
			r.NamePriority = eff.Priority
		}
	case Synonym:
		r.Synonyms = append(r.Synonyms, name)
	case Vernacular:
		r.Vernacular = append(r.Vernacular, name)
	}
}

// Identifier returns the best identifier of the citation: URL, then
// pubmed id, then medline id. Returns an empty string if there are none.
// Ids equal to "0" mean "no id" in the NCBI dump.
func (c Citation) Identifier() string {
	switch {
	case c.URL != "":
		return c.URL
	case isID(c.PubmedID):
		return "pubmed:" + c.PubmedID
	case isID(c.MedlineID):
		return "medline:" + c.MedlineID
	default:
		return ""
	}
}

func isID(s string) bool {
	return s != "" && s != "0"
}
