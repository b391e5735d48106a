package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"
	"time"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/domain/services"
	jwtauth "splitwise-platform/internal/infrastructure/auth"
	middlewares "splitwise-platform/internal/infrastructure/http/middleware"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/metrics"
	"splitwise-platform/internal/utils"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
	HeaderUserRole = "X-User-Role"
)

// InstanceSource lists the UP instances of a registry application.
type InstanceSource interface {
	Instances(app string) []*models.Instance
}

type upstreamKey struct{}

type upstream struct {
	route  Route
	target *url.URL
}

// Gateway routes requests to upstream services.
type Gateway struct {
	table    *RouteTable
	source   InstanceSource
	selector services.InstanceSelector
	log      *logger.Logger
	proxy    *httputil.ReverseProxy
	auth     func(http.Handler) http.Handler
}

func New(
	table *RouteTable,
	source InstanceSource,
	selector services.InstanceSelector,
	tokens *jwtauth.Manager,
	log *logger.Logger,
	upstreamTimeout time.Duration,
) *Gateway {
	g := &Gateway{
		table:    table,
		source:   source,
		selector: selector,
		log:      log,
		auth:     middlewares.JWTAuth(tokens),
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if upstreamTimeout > 0 {
		transport.ResponseHeaderTimeout = upstreamTimeout
	}
	g.proxy = &httputil.ReverseProxy{
		Rewrite:        g.rewrite,
		Transport:      transport,
		ModifyResponse: g.modifyResponse,
		ErrorHandler:   g.errorHandler,
	}
	return g
}

func (g *Gateway) Routes() []Route { return g.table.Routes() }

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route, ok := g.table.Match(r.URL.Path)
	if !ok {
		_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPStatusToCode(http.StatusNotFound), "no route for "+r.URL.Path)
		return
	}
	if !route.Allows(r.Method) {
		w.Header().Set("Allow", strings.Join(route.Methods, ", "))
		_ = utils.WriteError(w, http.StatusMethodNotAllowed, utils.HTTPStatusToCode(http.StatusMethodNotAllowed),
			r.Method+" is not allowed on "+route.PathPrefix)
		return
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target, err := g.resolve(route)
		if err != nil {
			g.log.Warn("no upstream available", "route", route.ID, "service", route.Service)
			metrics.IncUpstream(route.ID, http.StatusServiceUnavailable)
			utils.WriteDomainError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), upstreamKey{}, upstream{route: route, target: target})
		g.proxy.ServeHTTP(w, r.WithContext(ctx))
	})

	if route.AuthRequired {
		g.auth(next).ServeHTTP(w, r)
		return
	}
	next.ServeHTTP(w, r)
}

func (g *Gateway) resolve(route Route) (*url.URL, error) {
	if route.target != nil {
		return route.target, nil
	}
	picked := g.selector.Select(g.source.Instances(route.Service), 1)
	if len(picked) == 0 {
		return nil, utils.ErrNoInstances
	}
	return url.Parse(picked[0].BaseURL())
}

func (g *Gateway) rewrite(pr *httputil.ProxyRequest) {
	up := pr.In.Context().Value(upstreamKey{}).(upstream)

	pr.Out.URL.Path = up.route.upstreamPath(pr.In.URL.Path)
	pr.Out.URL.RawPath = ""
	pr.SetURL(up.target)
	pr.SetXForwarded()

	// Identity headers are only trusted when the gateway sets them.
	pr.Out.Header.Del(HeaderUserID)
	pr.Out.Header.Del(HeaderUserName)
	pr.Out.Header.Del(HeaderUserRole)
	if claims, ok := middlewares.ClaimsFromContext(pr.In.Context()); ok {
		pr.Out.Header.Set(HeaderUserID, strconv.FormatInt(claims.UserID, 10))
		pr.Out.Header.Set(HeaderUserName, claims.Username)
		pr.Out.Header.Set(HeaderUserRole, claims.Role)
	}
	pr.Out.Header.Set(chiMiddleware.RequestIDHeader, utils.RequestIDOrNew(chiMiddleware.GetReqID(pr.In.Context())))
}

func (g *Gateway) modifyResponse(resp *http.Response) error {
	if up, ok := resp.Request.Context().Value(upstreamKey{}).(upstream); ok {
		metrics.IncUpstream(up.route.ID, resp.StatusCode)
	}
	return nil
}

func (g *Gateway) errorHandler(w http.ResponseWriter, r *http.Request, err error) {
	up, _ := r.Context().Value(upstreamKey{}).(upstream)
	if errors.Is(err, context.Canceled) {
		g.log.Debug("client went away", "route", up.route.ID)
		w.WriteHeader(499)
		return
	}
	g.log.Error("upstream request failed", "route", up.route.ID, "target", up.target.String(), "err", err)
	metrics.IncUpstream(up.route.ID, http.StatusBadGateway)
	_ = utils.WriteError(w, http.StatusBadGateway, utils.HTTPStatusToCode(http.StatusBadGateway), "upstream unavailable")
}
