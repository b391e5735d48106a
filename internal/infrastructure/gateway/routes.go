package gateway

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/config"
	"splitwise-platform/internal/utils"
)

// Route forwards every path under PathPrefix either to a registry application
// (Service) or to a fixed upstream (URL).
type Route struct {
	ID           string   `json:"id"`
	PathPrefix   string   `json:"path_prefix"`
	Service      string   `json:"service,omitempty"`
	URL          string   `json:"url,omitempty"`
	StripPrefix  bool     `json:"strip_prefix"`
	AuthRequired bool     `json:"auth_required"`
	Methods      []string `json:"methods,omitempty"`

	target *url.URL
}

// RouteTable matches request paths against routes, longest prefix first.
type RouteTable struct {
	routes []Route
}

func NewRouteTable(cfg []config.Route) (*RouteTable, error) {
	const op = "gateway.NewRouteTable"

	seen := make(map[string]struct{}, len(cfg))
	routes := make([]Route, 0, len(cfg))
	for _, c := range cfg {
		r := Route{
			ID:           strings.TrimSpace(c.ID),
			PathPrefix:   "/" + strings.Trim(strings.TrimSpace(c.PathPrefix), "/"),
			Service:      models.NormalizeAppName(c.Service),
			URL:          strings.TrimSpace(c.URL),
			StripPrefix:  c.StripPrefix,
			AuthRequired: c.AuthRequired,
		}
		if r.ID == "" {
			return nil, fmt.Errorf("%s: route with prefix %q has no id", op, c.PathPrefix)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate route id %q", op, r.ID)
		}
		seen[r.ID] = struct{}{}

		methods, err := normalizeMethods(c.Methods)
		if err != nil {
			return nil, fmt.Errorf("%s: route %q: %w", op, r.ID, err)
		}
		r.Methods = methods

		switch {
		case r.Service == "" && r.URL == "":
			return nil, fmt.Errorf("%s: route %q needs service or url", op, r.ID)
		case r.Service != "" && r.URL != "":
			return nil, fmt.Errorf("%s: route %q sets both service and url", op, r.ID)
		case r.URL != "":
			u, err := url.Parse(r.URL)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return nil, fmt.Errorf("%s: route %q has invalid url %q", op, r.ID, r.URL)
			}
			r.target = u
		}
		routes = append(routes, r)
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return len(routes[i].PathPrefix) > len(routes[j].PathPrefix)
	})
	return &RouteTable{routes: routes}, nil
}

// Match returns the route with the longest prefix covering path. Prefixes
// match whole segments only: /api/users matches /api/users/1 but not /api/usersx.
func (t *RouteTable) Match(path string) (Route, bool) {
	for _, r := range t.routes {
		if r.PathPrefix == "/" || path == r.PathPrefix || strings.HasPrefix(path, r.PathPrefix+"/") {
			return r, true
		}
	}
	return Route{}, false
}

func normalizeMethods(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(in))
	for _, m := range in {
		m = strings.ToUpper(strings.TrimSpace(m))
		switch m {
		case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions:
		default:
			return nil, fmt.Errorf("unsupported method %q", m)
		}
		if !utils.ContainsString(out, m) {
			out = append(out, m)
		}
	}
	// GET implies HEAD.
	if utils.ContainsString(out, http.MethodGet) && !utils.ContainsString(out, http.MethodHead) {
		out = append(out, http.MethodHead)
	}
	return out, nil
}

// Allows reports whether the route accepts method.
func (r Route) Allows(method string) bool {
	return len(r.Methods) == 0 || utils.ContainsString(r.Methods, method)
}

func (t *RouteTable) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

// upstreamPath is the path sent to the upstream.
func (r Route) upstreamPath(path string) string {
	if !r.StripPrefix || r.PathPrefix == "/" {
		return path
	}
	rest := strings.TrimPrefix(path, r.PathPrefix)
	if rest == "" {
		return "/"
	}
	return rest
}
