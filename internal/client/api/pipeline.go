package api

import (
	"context"
	"time"

	"github.com/Sakee8848/property-management-ai/internal/logging"
)

// User-facing reaction messages, one per failure kind.
const (
	msgNetworkError   = "网络错误,请检查网络连接"
	msgSessionExpired = "登录已过期,请重新登录"
	msgForbidden      = "没有权限访问"
	msgNotFound       = "请求的资源不存在"
	msgServerError    = "服务器错误"
	msgRequestFailed  = "请求失败"
)

// defaultRedirectDelay is how long the session-expired notification stays
// readable before navigation to the login entry point.
const defaultRedirectDelay = 1500 * time.Millisecond

// Session is the pipeline's view of the session manager: the current
// bearer token, and invalidation on session expiry.
type Session interface {
	// Token returns the current bearer token, or "" when unauthenticated.
	Token() string
	// Logout clears the session. Must be idempotent.
	Logout()
}

// Notifier shows a transient user-facing message. Classified failures
// produce exactly one notification per failed request.
type Notifier interface {
	Notify(message string)
}

// Navigator moves the user to the login entry point after session expiry.
type Navigator interface {
	NavigateToLogin()
}

// Router decides the route for a request. The config-backed implementation
// reads the simulation switch once per request.
type Router interface {
	Route(req *Request) Route
}

// RouterFunc adapts a function to the Router interface.
type RouterFunc func(req *Request) Route

func (f RouterFunc) Route(req *Request) Route { return f(req) }

// SimulationRouter routes everything to the simulated backend while enabled
// reports true, and everything to the live transport otherwise. There is no
// per-request override.
func SimulationRouter(enabled func() bool) Router {
	return RouterFunc(func(*Request) Route {
		if enabled() {
			return RouteSimulated
		}
		return RouteLive
	})
}

// PreStage runs before dispatch and may mutate the request in place.
type PreStage func(ctx context.Context, req *Request)

// PostStage reacts to a classified live failure. Stages are side effects;
// they never alter or swallow the error.
type PostStage func(ctx context.Context, req *Request, cerr *Error)

// Deps wires the pipeline's collaborators.
type Deps struct {
	Router    Router
	Transport Transport
	Simulated Handler
	Session   Session
	Notifier  Notifier
	Navigator Navigator
	Logger    logging.Logger

	// RedirectDelay overrides the pause before the login redirect;
	// zero means the default.
	RedirectDelay time.Duration
}

// Pipeline is the request pipeline. Each call runs the pre-dispatch stages
// (routing, bearer injection), dispatches to exactly one of the two paths,
// and on the live path classifies the outcome and runs the post-dispatch
// reactions before propagating the failure to the caller.
type Pipeline struct {
	router        Router
	transport     Transport
	simulated     Handler
	session       Session
	notifier      Notifier
	navigator     Navigator
	log           logging.Logger
	redirectDelay time.Duration

	pre  []PreStage
	post []PostStage
}

func NewPipeline(deps Deps) *Pipeline {
	p := &Pipeline{
		router:        deps.Router,
		transport:     deps.Transport,
		simulated:     deps.Simulated,
		session:       deps.Session,
		notifier:      deps.Notifier,
		navigator:     deps.Navigator,
		log:           deps.Logger,
		redirectDelay: deps.RedirectDelay,
	}
	if p.log == nil {
		p.log = logging.NewDiscard()
	}
	if p.redirectDelay == 0 {
		p.redirectDelay = defaultRedirectDelay
	}
	p.pre = []PreStage{p.routeStage, p.bearerStage}
	p.post = []PostStage{p.notifyStage, p.sessionExpiryStage}
	return p
}

// Do issues one call. Successful responses come back unchanged; classified
// failures are returned after their reactions have run. Simulated responses
// skip classification entirely.
func (p *Pipeline) Do(ctx context.Context, req *Request) (*Response, error) {
	for _, stage := range p.pre {
		stage(ctx, req)
	}

	if req.Route == RouteSimulated {
		return p.simulated.Handle(ctx, req)
	}

	resp, err := p.transport.RoundTrip(ctx, req)

	cerr := Classify(resp, err)
	if cerr == nil {
		return resp, nil
	}

	p.log.Warn(ctx, "request failed", "method", req.Method, "path", req.Path, "kind", string(cerr.Kind), "status", cerr.Status)
	for _, stage := range p.post {
		stage(ctx, req, cerr)
	}
	return nil, cerr
}

// routeStage records the routing decision. The simulation switch is
// consulted once per request; when it is on, the live transport is never
// invoked regardless of destination.
func (p *Pipeline) routeStage(_ context.Context, req *Request) {
	req.Route = p.router.Route(req)
}

// bearerStage attaches the bearer credential to live requests. A missing
// token is not an error here; unauthenticated requests proceed and the
// server decides.
func (p *Pipeline) bearerStage(_ context.Context, req *Request) {
	if req.Route != RouteLive {
		return
	}
	if token := p.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// notifyStage surfaces one transient notification per classified failure.
func (p *Pipeline) notifyStage(_ context.Context, _ *Request, cerr *Error) {
	switch cerr.Kind {
	case KindNetwork:
		p.notifier.Notify(msgNetworkError)
	case KindSessionExpired:
		p.notifier.Notify(msgSessionExpired)
	case KindForbidden:
		p.notifier.Notify(msgForbidden)
	case KindNotFound:
		p.notifier.Notify(msgNotFound)
	case KindServer:
		p.notifier.Notify(msgServerError)
	default:
		if cerr.Detail != "" {
			p.notifier.Notify(cerr.Detail)
			return
		}
		p.notifier.Notify(msgRequestFailed)
	}
}

// sessionExpiryStage clears the session on a 401 and schedules navigation
// to the login entry point after the redirect delay, giving the user time
// to read the notification first.
func (p *Pipeline) sessionExpiryStage(_ context.Context, _ *Request, cerr *Error) {
	if cerr.Kind != KindSessionExpired {
		return
	}
	p.session.Logout()
	time.AfterFunc(p.redirectDelay, p.navigator.NavigateToLogin)
}
