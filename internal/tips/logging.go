package tips

import (
	"context"
	"time"
)

// LoggingProvider records latency, token usage and failures for every
// generation call.
type LoggingProvider struct {
	inner Provider
	logf  func(format string, args ...any)
}

// WithLogging wraps a Provider so every call is reported through logf.
func WithLogging(p Provider, logf func(format string, args ...any)) Provider {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &LoggingProvider{inner: p, logf: logf}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	latency := time.Since(start).Round(time.Millisecond)
	if err != nil {
		l.logf("tips: %s failed after %s: %v", l.inner.ModelID(), latency, err)
		return nil, err
	}

	l.logf("tips: %s answered in %s (in=%d out=%d tokens)",
		resp.Model, latency, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
