package pushgateway

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/push"
)

//Push pushes metrics to prometheus push-gateway once
func Push(ctx context.Context, conf Config) error {
	const api = "push-gateway.Push"

	if err := conf.Validate(); err != nil {
		return errors.Wrap(err, api)
	}
	return errors.Wrap(pusher{Config: &conf}.push(ctx), api)
}

//====================================================== IMPL ====================================================

type pusher struct {
	*Config
}

type wrapHTTPDoer struct {
	ctx     context.Context
	wrapped push.HTTPDoer
}

//Do overrides push.HTTPDoer
func (doer *wrapHTTPDoer) Do(req *http.Request) (*http.Response, error) {
	req = req.WithContext(doer.ctx)
	return doer.wrapped.Do(req)
}

func (p pusher) httpClient() *http.Client {
	if p.HttpClient != nil {
		return p.HttpClient
	}
	retries := p.Retries
	if retries <= 0 {
		retries = DefaultRetries
	}
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.ErrorHandler = func(resp *http.Response, err error, numTries int) (*http.Response, error) {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		if err == nil {
			err = errors.Errorf("giving up after %v attempt(s)", numTries)
		}
		return nil, err
	}
	client.RetryMax = retries
	client.RetryWaitMin = time.Millisecond
	client.RetryWaitMax = 100 * time.Millisecond
	return client.StandardClient()
}

func (p pusher) push(ctx context.Context) error {
	anURL, e := p.GwEndpointURL(ctx)
	if e != nil {
		return e
	}
	ps := push.New(anURL, p.JobName)
	for _, g := range p.Gatherers {
		ps = ps.Gatherer(g)
	}
	for _, c := range p.Collectors {
		ps = ps.Collector(c)
	}
	for k, v := range p.Grouping {
		ps = ps.Grouping(k, v)
	}
	if p.AuthProvider != nil {
		var auth BasicAuth
		if auth, e = p.AuthProvider(ctx); e != nil {
			return e
		}
		if len(auth.Username) > 0 {
			ps = ps.BasicAuth(string(auth.Username), string(auth.Password))
		}
	}
	if len(p.ExpFmt) > 0 {
		ps = ps.Format(p.ExpFmt)
	}
	if p.RequestDuration > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, p.RequestDuration)
		defer cancel()
	}
	ps = ps.Client(&wrapHTTPDoer{ctx: ctx, wrapped: p.httpClient()})

	switch p.Strategy {
	case PushStrategy:
		e = ps.Push()
	case AddStrategy:
		e = ps.Add()
	case DelStrategy:
		e = ps.Delete()
	default:
		e = errors.Errorf("unknown strategy (%v)", p.Strategy)
	}
	return e
}
