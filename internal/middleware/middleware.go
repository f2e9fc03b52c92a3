// Package middleware holds the global and route-specific Echo middleware:
// Clerk authentication, request ids, request logging, CORS, rate limiting,
// New Relic tracing and panic recovery.
package middleware
