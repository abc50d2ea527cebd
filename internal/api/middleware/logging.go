// SPDX-License-Identifier: MIT

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	xglog "github.com/ManuGH/lookupbot/internal/log"
)

// AccessLog writes one structured line per request and puts the request
// id into the context for downstream loggers.
func AccessLog() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()
			if id := chimw.GetReqID(ctx); id != "" {
				ctx = xglog.ContextWithRequestID(ctx, id)
				r = r.WithContext(ctx)
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			logger := xglog.WithComponentFromContext(ctx, "http")
			evt := logger.Debug()
			if sw.status >= http.StatusInternalServerError {
				evt = logger.Warn()
			}
			evt.Str(xglog.FieldEvent, "http.request").
				Str("method", r.Method).
				Str("route", routeLabel(chi.RouteContext(ctx))).
				Int(xglog.FieldStatus, sw.status).
				Int64(xglog.FieldDurationMS, time.Since(start).Milliseconds()).
				Msg("request served")
		})
	}
}
