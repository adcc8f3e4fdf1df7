package domain

import "maps"

// Well-known parameter names.
const (
	ParamArea    = "area"
	ParamConcern = "concern"
	ParamAction  = "action"

	ParamTemplateName   = "templatename"
	ParamTemplateFolder = "templatefolder"
	ParamTemplatePath   = "templatepath"
)

// Params is a string-keyed bag of request or template parameters.
// A missing key reads as the empty string.
type Params map[string]string

// Get returns the value for key, or "" when unset.
func (p Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// With returns a copy of p with the given key/value pairs applied.
// kv must hold an even number of elements.
func (p Params) With(kv ...string) Params {
	out := make(Params, len(p)+len(kv)/2)
	maps.Copy(out, p)
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = kv[i+1]
	}
	return out
}

// TemplateParams returns the parameters handed to plugins for one candidate.
func TemplateParams(name, folder, path string) Params {
	return Params{
		ParamTemplateName:   name,
		ParamTemplateFolder: folder,
		ParamTemplatePath:   path,
	}
}
