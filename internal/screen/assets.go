package screen

import "strings"

// Assets resolves logical asset names (logos, avatars, illustrations) to
// something the presentation layer can load. With no base URL the name is
// returned as is.
type Assets struct {
	BaseURL string
}

func (a Assets) Resolve(name string) string {
	if name == "" || a.BaseURL == "" {
		return name
	}
	return strings.TrimSuffix(a.BaseURL, "/") + "/" + name
}
