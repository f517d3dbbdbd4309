package breadcrumb

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type chiSource struct {
	routes chi.Routes
}

// NewChiSource returns a RouteSource enumerating the routing table of a chi
// router. Endpoint identifiers are derived from the registered handler's
// function name.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Get("/products", productIndex)
//	b := breadcrumb.New(breadcrumb.NewChiSource(r))
func NewChiSource(routes chi.Routes) RouteSource {
	return &chiSource{routes: routes}
}

func (s *chiSource) Routes() ([]Route, error) {
	var routes []Route
	err := chi.Walk(s.routes, func(method, route string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, Route{
			URL:      route,
			Endpoint: EndpointName(handler),
			Methods:  []string{method},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("breadcrumb: walking chi routes: %w", err)
	}
	return routes, nil
}
