package breadcrumb

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chiIndex(w http.ResponseWriter, r *http.Request)        {}
func chiProductIndex(w http.ResponseWriter, r *http.Request) {}
func chiProductShow(w http.ResponseWriter, r *http.Request)  {}

func TestChiSource_Routes(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/", chiIndex)
	r.Get("/products", chiProductIndex)
	r.Get("/products/{id}", chiProductShow)
	r.Post("/products", chiProductIndex)

	routes, err := NewChiSource(r).Routes()
	require.NoError(t, err)

	byEndpoint := map[string][]Route{}
	for _, rt := range routes {
		byEndpoint[rt.Endpoint] = append(byEndpoint[rt.Endpoint], rt)
	}
	assert.Contains(t, byEndpoint, "chiIndex")
	assert.Contains(t, byEndpoint, "chiProductIndex")
	assert.Contains(t, byEndpoint, "chiProductShow")

	methods := map[string]bool{}
	for _, rt := range byEndpoint["chiProductIndex"] {
		for _, m := range rt.Methods {
			methods[m] = true
		}
	}
	assert.True(t, methods[http.MethodGet])
	assert.True(t, methods[http.MethodPost])
}

func TestChiSource_tree(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/", chiIndex)
	r.Get("/products", chiProductIndex)
	r.Get("/products/{id}", chiProductShow)

	b := New(NewChiSource(r))
	b.Set("chiProductIndex", "Products", 0)

	tree, err := b.Tree("/products")
	require.NoError(t, err)
	require.NotNil(t, tree)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "Products", tree.Children[0].label())
	assert.True(t, tree.Children[0].IsCurrentPath)
}

func TestMiddleware_chi(t *testing.T) {
	r := chi.NewRouter()
	b := New(NewChiSource(r))
	r.Get("/", chiIndex)
	r.Get("/docs", func(w http.ResponseWriter, req *http.Request) {
		tree := FromContext(req.Context())
		require.NotNil(t, tree)
		out, err := JSONFromContext(req.Context())
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(out))
	})

	handler := b.Middleware(r)
	req := httptest.NewRequest(http.MethodGet, "/docs", http.NoBody)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"url": "/docs"`)
	assert.Contains(t, body, `"is_current_path": true`)
	assert.Contains(t, body, `"text": "Docs"`)
}
