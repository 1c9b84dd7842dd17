package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the patch applies to.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one component with its own patch options.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// Templ renders component as HTML, or as a single element patch for
// datastar requests.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return TemplMulti(Patch(component, opts...))
}

// TemplMulti sends one element patch per entry to datastar clients and the
// concatenated HTML to everyone else.
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}

// TemplWithSignals is Templ plus a signals patch built from the JSON
// encoding of signals. Plain requests get the HTML only.
func TemplWithSignals(component templ.Component, signals any, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(component, opts...)}, signals: signals}
}

type templResponse struct {
	patches []TemplPatch
	signals any
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		var payload []byte
		if t.signals != nil {
			// Encode before opening the stream so failures can still become a status code.
			var err error
			if payload, err = json.Marshal(t.signals); err != nil {
				return fmt.Errorf("marshal signals: %w", err)
			}
		}

		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		if payload != nil {
			return sse.PatchSignals(payload)
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}
