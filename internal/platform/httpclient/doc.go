// Package httpclient is the outbound HTTP client used to reach the sync API.
//
// A call passes through these stages:
//
//	rate limiter → circuit breaker → header propagation → client span → retries → net/http
//
// Request and correlation ids, and an idempotency key, travel in the
// context and are written as headers on every attempt:
//
//	ctx = httpclient.WithIdempotencyKey(ctx, mutation.ID)
//	resp, err := client.Do(ctx, req)
//
// Only replayable requests are retried: idempotent methods, and any request
// that carries an Idempotency-Key.
package httpclient
