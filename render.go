package breadcrumb

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Nav returns a templ component rendering the active breadcrumb trail as an
// accessible <nav>/<ol> fragment. The trail runs from the root to the node
// marked as the current path; when no node matches the current path only the
// root is rendered. A nil tree renders nothing.
func Nav(root *Item) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if root == nil {
			return nil
		}
		trail := root.Trail()
		if trail == nil {
			trail = []*Item{root}
		}
		var err error
		write := func(s string) {
			if err == nil {
				_, err = io.WriteString(w, s)
			}
		}
		write(`<nav aria-label="breadcrumb"><ol class="breadcrumb">`)
		for _, item := range trail {
			label := templ.EscapeString(item.label())
			if item.IsCurrentPath {
				write(`<li class="breadcrumb-item active" aria-current="page">`)
				write(label)
				write(`</li>`)
				continue
			}
			write(`<li class="breadcrumb-item"><a href="`)
			write(templ.EscapeString(string(templ.URL(item.URL))))
			write(`">`)
			write(label)
			write(`</a></li>`)
		}
		write(`</ol></nav>`)
		return err
	})
}
