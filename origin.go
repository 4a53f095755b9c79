package spyder

import (
	"net/url"
	"strings"
)

// Origin is the (scheme, host, port) tuple that scopes a traversal.
type Origin struct {
	Scheme string
	Host   string
	Port   string
}

// String returns the origin in scheme://host:port form.
func (o Origin) String() string {
	return o.Scheme + "://" + o.Host + ":" + o.Port
}

// OriginOf returns the origin of an absolute URL.
// Scheme and host are lowercased and an omitted port is replaced by the
// scheme's default port.
func OriginOf(rawURL string) (Origin, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Origin{}, Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Origin{}, Errorf(EINVALID, "URL %q is not absolute", rawURL)
	}

	o := Origin{
		Scheme: strings.ToLower(u.Scheme),
		Host:   strings.ToLower(u.Hostname()),
		Port:   u.Port(),
	}
	if o.Port == "" {
		o.Port = defaultPort(o.Scheme)
	}
	return o, nil
}

// SameOrigin reports whether both URLs parse and share an origin.
func SameOrigin(a, b string) bool {
	oa, err := OriginOf(a)
	if err != nil {
		return false
	}
	ob, err := OriginOf(b)
	if err != nil {
		return false
	}
	return oa == ob
}

func defaultPort(scheme string) string {
	switch scheme {
	case "http":
		return "80"
	case "https":
		return "443"
	}
	return ""
}

// NormalizeDomain turns one line of domain input into a root URL.
// Surrounding whitespace is trimmed and bare hosts get scheme:// prepended.
// It returns an empty string for blank input.
func NormalizeDomain(input, scheme string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}
	if strings.Contains(s, "://") {
		return s
	}
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + s
}
