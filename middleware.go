package breadcrumb

import (
	"context"
	"net/http"

	"github.com/jackielii/ctxkey"
)

var crumbCtx = ctxkey.New[*requestCrumbs]("breadcrumb.request", nil)

type requestCrumbs struct {
	ext  *Breadcrumb
	path string
}

// Middleware installs the extension into the request context so that
// handlers and templates further down the chain can call FromContext or
// JSONFromContext. The tree itself is built lazily on first access.
func (b *Breadcrumb) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := crumbCtx.WithValue(r.Context(), &requestCrumbs{ext: b, path: r.URL.Path})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext builds the breadcrumb tree for the request the context belongs
// to. It returns nil when the middleware is not installed, when no routes
// are registered, or when route enumeration fails; breadcrumbs degrade to
// absent rather than erroring.
func FromContext(ctx context.Context) *Item {
	rc := crumbCtx.Value(ctx)
	if rc == nil {
		return nil
	}
	tree, err := rc.ext.Tree(rc.path)
	if err != nil {
		return nil
	}
	return tree
}

// JSONFromContext returns the current request's breadcrumb tree as an
// indented JSON document, "{}" when unavailable.
func JSONFromContext(ctx context.Context) (string, error) {
	rc := crumbCtx.Value(ctx)
	if rc == nil {
		return "{}", nil
	}
	return rc.ext.JSON(rc.path)
}
