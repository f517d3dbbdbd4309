package breadcrumb

import (
	"encoding/json"
	"net/http"
	"net/url"

	htmx "github.com/angelofallars/htmx-go"
)

// Handler serves the breadcrumb tree for the requesting page. HTMX requests
// receive the rendered Nav fragment, suitable for hx-get swaps; other
// requests receive the JSON projection of the tree.
//
// The page path is resolved from the "path" query parameter, then from the
// HX-Current-URL request header, then from the request's own path.
func (b *Breadcrumb) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")
		if path == "" {
			if current := r.Header.Get("HX-Current-URL"); current != "" {
				if u, err := url.Parse(current); err == nil {
					path = u.Path
				}
			}
		}
		if path == "" {
			path = r.URL.Path
		}

		tree, err := b.Tree(path)
		if err != nil {
			http.Error(w, "breadcrumbs unavailable", http.StatusInternalServerError)
			return
		}

		if htmx.IsHTMX(r) {
			if err := htmx.NewResponse().RenderTempl(r.Context(), w, Nav(tree)); err != nil {
				http.Error(w, "breadcrumbs unavailable", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if tree == nil {
			_, _ = w.Write([]byte("{}"))
			return
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(tree)
	})
}
