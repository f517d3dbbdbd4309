package breadcrumb

import (
	"github.com/labstack/echo/v4"
)

type echoSource struct {
	e *echo.Echo
}

// NewEchoSource returns a RouteSource enumerating the routing table of an
// echo application. Echo names routes after their handler function; the
// package path is stripped to form the endpoint identifier.
func NewEchoSource(e *echo.Echo) RouteSource {
	return &echoSource{e: e}
}

func (s *echoSource) Routes() ([]Route, error) {
	registered := s.e.Routes()
	routes := make([]Route, 0, len(registered))
	for _, rt := range registered {
		if rt == nil || rt.Path == "" {
			continue
		}
		routes = append(routes, Route{
			URL:      rt.Path,
			Endpoint: shortName(rt.Name),
			Methods:  []string{rt.Method},
		})
	}
	return routes, nil
}

// EchoMiddleware installs the extension into the request context, the echo
// counterpart of Middleware.
func (b *Breadcrumb) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := crumbCtx.WithValue(req.Context(), &requestCrumbs{ext: b, path: req.URL.Path})
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
