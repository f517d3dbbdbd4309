package breadcrumb

import (
	"net/http"
	"reflect"
	"runtime"
	"strings"
)

var textReplacer = strings.NewReplacer("-", " ", "_", " ")

// defaultText derives a display label from the last segment of a URL:
// hyphens and underscores become spaces and each word is title-cased.
// The root URL is labelled "Home".
func defaultText(url string) string {
	url = strings.TrimRight(url, "/")
	if url == "" {
		return "Home"
	}
	last := url[strings.LastIndexByte(url, '/')+1:]
	text := titleize(textReplacer.Replace(last))
	if text == "" {
		return "Home"
	}
	return text
}

func titleize(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// EndpointName returns the identifier used to key breadcrumb metadata for a
// handler function: the function's name with package path and method value
// suffix stripped, e.g. "productIndex" for main.productIndex.
func EndpointName(handler http.Handler) string {
	if handler == nil {
		return ""
	}
	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Func {
		return v.Type().String()
	}
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return ""
	}
	return shortName(fn.Name())
}

// shortName strips the package path from a fully qualified function name, as
// reported by router introspection.
func shortName(name string) string {
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
