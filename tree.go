package breadcrumb

import (
	"net/http"
	"strings"
)

// Tree builds the breadcrumb tree for the given request path. Exactly one
// node per registered URL appears in the candidate set; the node matching
// the current path has IsCurrentPath set. The returned tree contains all
// top-level items plus the items along the branch leading to the current
// path. It returns nil when no usable routes are registered.
func (b *Breadcrumb) Tree(currentPath string) (*Item, error) {
	currentPath = strings.TrimRight(currentPath, "/")
	if currentPath == "" {
		currentPath = "/"
	}

	routes, err := b.cachedRoutes()
	if err != nil {
		return nil, err
	}

	items := make(map[string]*Item, len(routes))
	for _, rt := range routes {
		if !hasMethod(rt.Methods, http.MethodGet) || strings.HasPrefix(rt.Endpoint, "static") {
			continue
		}
		if _, ok := items[rt.URL]; ok {
			continue
		}
		item := &Item{URL: rt.URL, IsCurrentPath: rt.URL == currentPath}
		if m, ok := b.lookupMeta(rt); ok {
			item.Text = m.text
			item.TextFunc = m.textFunc
			item.Order = m.order
		} else {
			item.Text = defaultText(rt.URL)
		}
		items[rt.URL] = item
	}
	if len(items) == 0 {
		return nil, nil
	}

	if _, ok := items["/"]; !ok {
		items["/"] = &Item{Text: b.rootText, URL: "/", IsCurrentPath: currentPath == "/"}
	}

	// Root fast path: a flat single node, skipping the relationship scan.
	if currentPath == "/" {
		root := *items["/"]
		root.Children = nil
		root.IsCurrentPath = true
		return &root, nil
	}

	// Chain of registered URLs from the current path up to the root.
	chain := make([]string, 0, 8)
	for path := currentPath; path != "/"; {
		if _, ok := items[path]; ok {
			chain = append(chain, path)
		}
		parent := parentURL(path)
		if parent == path {
			break
		}
		path = parent
	}
	chain = append(chain, "/")

	// Group items under their parent URL. Descendants of the current path
	// are excluded: breadcrumbs never show below the current page.
	buckets := make(map[string][]*Item)
	for url, item := range items {
		if url == "/" {
			continue
		}
		if url != currentPath && isChildOf(url, currentPath) {
			continue
		}
		parent := parentURL(url)
		buckets[parent] = append(buckets[parent], item)
	}
	for _, children := range buckets {
		sortItems(children)
	}

	root := items["/"]
	root.Children = buckets["/"]

	// Attach deeper levels only along the chain to the current path.
	level := root
	for i := len(chain) - 2; i >= 0; i-- {
		for _, child := range level.Children {
			if child.URL == chain[i] {
				if child.URL != currentPath {
					child.Children = buckets[child.URL]
				}
				level = child
				break
			}
		}
	}
	return root, nil
}

// isChildOf reports whether child is nested under parent: every non-root URL
// is a child of "/", otherwise child must start with parent followed by a
// path separator and be strictly longer.
func isChildOf(child, parent string) bool {
	if parent == "/" {
		return child != "/"
	}
	return len(child) > len(parent)+1 &&
		strings.HasPrefix(child, parent) &&
		child[len(parent)] == '/'
}

// parentURL returns the URL one path segment up, "/" for top-level URLs.
func parentURL(url string) string {
	url = strings.TrimRight(url, "/")
	if url == "" {
		return "/"
	}
	i := strings.LastIndexByte(url, '/')
	if i <= 0 {
		return "/"
	}
	return url[:i]
}
