package breadcrumb

import "testing"

func Test_normalizeURL(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"/", "/"},
		{"/products", "/products"},
		{"/products/", "/products"},
		{"/products/{id}", "/products"},
		{"/products/{id}/reviews", "/products/reviews"},
		{"/users/:id", "/users"},
		{"/users/:id/posts", "/users/posts"},
		{"/files/*", "/files"},
		{"/files/{rest...}", "/files"},
		{"/{$}", "/"},
		{"//double//slashes", "/double/slashes"},
		{"/broken/{unclosed", "/broken"},
	}
	for _, tt := range tests {
		if got := normalizeURL(tt.pattern); got != tt.want {
			t.Errorf("normalizeURL(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestRouteList(t *testing.T) {
	list := RouteList{{URL: "/", Endpoint: "index", Methods: []string{"GET"}}}
	routes, err := list.Routes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 1 || routes[0].URL != "/" {
		t.Errorf("unexpected routes: %v", routes)
	}
}

func Test_hasMethod(t *testing.T) {
	if !hasMethod([]string{"GET", "HEAD"}, "GET") {
		t.Error("expected GET to match")
	}
	if !hasMethod([]string{"get"}, "GET") {
		t.Error("expected case-insensitive match")
	}
	if hasMethod([]string{"POST"}, "GET") {
		t.Error("expected POST-only route not to match GET")
	}
	if hasMethod(nil, "GET") {
		t.Error("expected empty method set not to match")
	}
}
