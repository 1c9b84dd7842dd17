// Package binder fills request structs from URL path parameters.
//
// Path takes an extractor so it works with any router:
//
//	type ContractorRequest struct {
//	    ID string `path:"id"`
//	}
//
//	bind := binder.Path(chi.URLParam)
//
// Fields without a path tag use their lowercased name; `path:"-"` skips a
// field. Missing parameters leave the zero value, so optional route segments
// simply come through empty.
package binder
