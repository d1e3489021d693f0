package locale

import "strings"

// Navigator receives the rewritten path produced by a locale switch.
// Implementations decide what navigation means for their transport: an HTTP
// handler issues a redirect, a test records the path.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// NavigationContext captures the navigation state a locale switch operates on.
// It is passed explicitly instead of being read from ambient routing state so
// the use-case layer stays pure and independently testable.
type NavigationContext struct {
	// Path is the current request path, optionally with a query string.
	Path string
	// Navigator is the sink for navigation requests. May be nil for read-only use.
	Navigator Navigator
}

// SplitPath splits p into its leading path segment and the remainder.
// The remainder always starts with "/" and any query string stays attached to it.
//
//	SplitPath("/en/settings") -> ("en", "/settings")
//	SplitPath("/en")          -> ("en", "/")
//	SplitPath("/")            -> ("",   "/")
func SplitPath(p string) (segment, rest string) {
	path, query := splitQuery(p)
	path = strings.TrimPrefix(path, "/")

	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		segment, rest = path[:idx], path[idx:]
	} else {
		segment, rest = path, "/"
	}
	return segment, rest + query
}

// ReplaceSegment rewrites the locale segment of p to code, preserving the rest
// of the path and any query string. When the leading segment of p is not a
// catalog code the path has no locale segment yet, so code is prefixed instead
// of silently leaving the path unchanged.
func ReplaceSegment(p string, code Code) string {
	segment, rest := SplitPath(p)
	if segment != "" && !IsValid(segment) {
		// No locale segment to replace; keep the whole path below the prefix.
		path, query := splitQuery(p)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "/" + string(code) + path + query
	}
	path, query := splitQuery(rest)
	if path == "/" {
		path = ""
	}
	return "/" + string(code) + path + query
}

func splitQuery(p string) (path, query string) {
	if idx := strings.IndexByte(p, '?'); idx >= 0 {
		return p[:idx], p[idx:]
	}
	return p, ""
}
