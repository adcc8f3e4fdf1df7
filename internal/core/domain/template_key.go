package domain

// ResolveKind tells the engine how a template was reached.
type ResolveKind int

const (
	// ResolveGlobal marks a top-level view found by the candidate search.
	ResolveGlobal ResolveKind = iota
	// ResolveInclude marks a fragment pulled in by an include directive.
	ResolveInclude
	// ResolveLayout marks a wrapper named by a layout directive.
	ResolveLayout
)

// String returns the lowercase name of the kind.
func (k ResolveKind) String() string {
	switch k {
	case ResolveGlobal:
		return "global"
	case ResolveInclude:
		return "include"
	case ResolveLayout:
		return "layout"
	default:
		return "unknown"
	}
}

// TemplateKey identifies a compiled template in the engine cache.
// Two keys are equal when both the name and the kind match.
type TemplateKey struct {
	Name InternedString
	Kind ResolveKind
}

// NewTemplateKey builds a key for name reached as kind.
func NewTemplateKey(name string, kind ResolveKind) TemplateKey {
	return TemplateKey{Name: NewInternedString(name), Kind: kind}
}

// String renders the key as "kind:name".
func (k TemplateKey) String() string {
	return k.Kind.String() + ":" + k.Name.String()
}

// ModelType names the shape of the model a template is compiled against.
// The engine keeps one artifact per (TemplateKey, ModelType).
type ModelType string

// DataDictionaryModel is the model type used for string-keyed maps.
const DataDictionaryModel ModelType = "data-dictionary"
