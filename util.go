package regclient

import (
	"net/http"
	"net/url"
	"strings"
)

// domainPath builds /domains/{name}[/suffix...] with the name escaped.
func domainPath(name string, more ...string) string {
	var b strings.Builder
	b.WriteString("/domains/")
	b.WriteString(url.PathEscape(strings.ToLower(strings.TrimSuffix(name, "."))))
	for _, m := range more {
		b.WriteString("/")
		b.WriteString(m)
	}
	return b.String()
}

func copyHeaders(dst, src http.Header) {
	for k, vs := range src {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}

// putOpt adds k to the payload only when the optional value was provided.
func putOpt[T any](p map[string]any, k string, v *T) {
	if v != nil {
		p[k] = *v
	}
}

// Pointer helpers for optional request fields. A nil pointer means "not
// provided"; a pointer to the zero value is an explicit falsy value and is
// serialized as such.

func Bool(b bool) *bool       { return &b }
func Int(i int) *int          { return &i }
func String(s string) *string { return &s }
