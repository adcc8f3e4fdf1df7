package domain

import "path/filepath"

// DefaultViewName is the fallback view tried at every level of the search.
const DefaultViewName = "default"

// Candidates returns the relative template names tried for a request, most specific first.
// Empty area or concern segments are collapsed by the path join.
func Candidates(params Params, extension string) []string {
	area := params.Get(ParamArea)
	concern := params.Get(ParamConcern)
	action := params.Get(ParamAction) + extension
	fallback := DefaultViewName + extension

	return []string{
		filepath.Join(area, concern, action),
		filepath.Join(area, concern, fallback),
		filepath.Join(area, action),
		filepath.Join(area, fallback),
		filepath.Join(action),
		filepath.Join(fallback),
	}
}
