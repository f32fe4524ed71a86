// Package middleware holds the http.Handler decorators shared by the
// server routes.
package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Wrap applies middlewares around h. The last middleware listed ends up
// outermost, so Wrap(h, Auth, Logging, Cors) runs Cors first.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
