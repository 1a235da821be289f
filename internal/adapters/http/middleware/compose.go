package middleware

import "net/http"

// Compose folds a list of middlewares into a single wrapper, applied
// right to left so the first argument ends up outermost. The daemon's
// entry router uses it as:
//
//	Compose(Recovery(l), RequestID(), OpenTelemetry(m), Logging(l), Timeout(d))(handler)
//
// which is equivalent to:
//
//	Recovery(l)(RequestID()(OpenTelemetry(m)(Logging(l)(Timeout(d)(handler)))))
//
// Recovery stays outermost so a panic anywhere below it, including in
// another middleware, is still caught.
func Compose(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}

		return next
	}
}
