package breadcrumb

import "strings"

// Route is a single entry of the host router's routing table. URL holds the
// registered pattern, Endpoint identifies the handler, and Methods lists the
// HTTP methods the entry responds to.
type Route struct {
	URL      string
	Endpoint string
	Methods  []string
}

// RouteSource enumerates the routes registered with a host router.
// Implementations exist for chi and echo; RouteList serves routers without
// introspection support.
type RouteSource interface {
	Routes() ([]Route, error)
}

// RouteList is a static RouteSource.
type RouteList []Route

func (l RouteList) Routes() ([]Route, error) {
	return l, nil
}

// normalizeURL converts a registered route pattern into the concrete URL used
// for prefix matching: parameter segments ({id}, :id, wildcards) are dropped,
// duplicate slashes collapsed and the trailing slash trimmed except for root.
func normalizeURL(pattern string) string {
	pattern = stripBraces(pattern)
	parts := strings.Split(pattern, "/")
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" || part == "*" || strings.HasPrefix(part, ":") {
			continue
		}
		kept = append(kept, part)
	}
	if len(kept) == 0 {
		return "/"
	}
	return "/" + strings.Join(kept, "/")
}

// stripBraces removes {name}, {name...} and {$} markers from a pattern,
// leaving any literal text around them in place.
func stripBraces(pattern string) string {
	var sb strings.Builder
	rest := pattern
	for {
		start := strings.Index(rest, "{")
		if start == -1 {
			sb.WriteString(rest)
			break
		}
		sb.WriteString(rest[:start])
		end := strings.Index(rest[start:], "}")
		if end == -1 {
			// unmatched brace, drop the remainder
			break
		}
		rest = rest[start+end+1:]
	}
	return sb.String()
}

func hasMethod(methods []string, method string) bool {
	for _, m := range methods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}
