// Package httpxtest serves fasthttp handlers over an in-memory listener so
// clients can be exercised without opening sockets.
package httpxtest

import (
	"net"
	"testing"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

// NewClient starts handler on an in-memory listener and returns a client
// whose connections all reach it, whatever host the request URI names.
func NewClient(t testing.TB, handler fasthttp.RequestHandler) *fasthttp.Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: handler}
	go func() {
		_ = srv.Serve(ln)
	}()
	t.Cleanup(func() {
		_ = ln.Close()
	})

	return &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}
}
