package middleware

import (
	"bytes"
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkworks/contentforge/internal/api/metrics"
)

// ResponseCacheStore abstracts the Redis-backed response cache.
type ResponseCacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
}

// bodyCaptureWriter tees the response body so a successful render can be
// stored in the cache after the handler ran.
type bodyCaptureWriter struct {
	http.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache serves GET responses from the store when present and records fresh
// 200 responses on the way out. The cache is strictly best-effort: a nil
// store or any store error degrades to pass-through. Only mount this on
// routes whose response does not depend on the caller's identity.
func Cache(store ResponseCacheStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if store == nil || c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := c.Request().RequestURI

			cached, found, err := store.Get(ctx, key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("cache lookup failed, serving fresh")
			} else if found {
				metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
				return c.JSONBlob(http.StatusOK, cached)
			}
			metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()

			capture := &bodyCaptureWriter{ResponseWriter: c.Response().Writer, body: &bytes.Buffer{}}
			c.Response().Writer = capture

			if err := next(c); err != nil {
				return err
			}

			if c.Response().Status == http.StatusOK && capture.body.Len() > 0 {
				if err := store.Set(ctx, key, capture.body.Bytes()); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("failed to store cached response")
				}
			}
			return nil
		}
	}
}
