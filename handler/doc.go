// Package handler turns typed handler functions into http.HandlerFunc values
// and renders templ components either as plain HTML or, for datastar
// requests, as server-sent element and signal patches.
//
//	type ContractorRequest struct {
//	    ID string `path:"id"`
//	}
//
//	show := func(ctx handler.Context, req ContractorRequest) handler.Response {
//	    return handler.Templ(pages.Contractor(req.ID))
//	}
//
//	r.Get("/contractors/{id}", handler.Wrap(show,
//	    handler.WithBinders[handler.Context, ContractorRequest](handler.BindPath(chi.URLParam)),
//	    handler.WithErrorHandler[handler.Context, ContractorRequest](errHandler),
//	))
//
// Binding and rendering failures go to the configured ErrorHandler.
// NewErrorHandler maps HTTPError values to status codes, logs them, and
// answers datastar requests with a toast patch instead of a full page.
package handler
