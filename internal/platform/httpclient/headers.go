package httpclient

import (
	"context"
	"net/http"
)

// Headers written on outbound requests.
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderCorrelationID  = "X-Correlation-ID"
	HeaderIdempotencyKey = "Idempotency-Key"
)

type outboundKey struct{}

// outbound holds the propagated header values for one logical call.
type outbound struct {
	requestID      string
	correlationID  string
	idempotencyKey string
}

func outboundFrom(ctx context.Context) outbound {
	o, _ := ctx.Value(outboundKey{}).(outbound)
	return o
}

func withOutbound(ctx context.Context, update func(*outbound)) context.Context {
	o := outboundFrom(ctx)
	update(&o)
	return context.WithValue(ctx, outboundKey{}, o)
}

// WithRequestID sets the X-Request-ID sent with outbound requests.
func WithRequestID(ctx context.Context, id string) context.Context {
	return withOutbound(ctx, func(o *outbound) { o.requestID = id })
}

// WithCorrelationID sets the X-Correlation-ID sent with outbound requests.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return withOutbound(ctx, func(o *outbound) { o.correlationID = id })
}

// WithIdempotencyKey sets the Idempotency-Key sent with outbound requests.
// Every attempt of a retried request carries the same key, and its presence
// makes a POST eligible for retry.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return withOutbound(ctx, func(o *outbound) { o.idempotencyKey = key })
}

// RequestIDFromContext returns the request id that outbound calls will send.
func RequestIDFromContext(ctx context.Context) string {
	return outboundFrom(ctx).requestID
}

// apply writes the non-empty values to h.
func (o outbound) apply(h http.Header) {
	for name, v := range map[string]string{
		HeaderRequestID:      o.requestID,
		HeaderCorrelationID:  o.correlationID,
		HeaderIdempotencyKey: o.idempotencyKey,
	} {
		if v != "" {
			h.Set(name, v)
		}
	}
}
