package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fasthttp"
)

type decoder func([]byte) ([]byte, error)

var decoders = map[string]decoder{
	"br":      decodeBrotli,
	"gzip":    decodeGzip,
	"zstd":    decodeZstd,
	"deflate": decodeDeflate,
}

// DecodeChain undoes the Content-Encoding of resp, last applied first, so a
// body sent with "gzip, br" is brotli-decoded and then gunzipped. It returns
// the plain body and whether anything was decoded.
func DecodeChain(resp *fasthttp.Response, body []byte) ([]byte, bool, error) {
	ce := string(resp.Header.Peek(fasthttp.HeaderContentEncoding))
	if ce == "" {
		return body, false, nil
	}

	encodings := strings.Split(ce, ",")
	changed := false
	for i := len(encodings) - 1; i >= 0; i-- {
		name := strings.ToLower(strings.TrimSpace(encodings[i]))
		switch name {
		case "", "identity", "compress":
			continue
		}
		dec, ok := decoders[name]
		if !ok {
			return nil, false, fmt.Errorf("unsupported content-encoding: %q", encodings[i])
		}
		out, err := dec(body)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", name, err)
		}
		body = out
		changed = true
	}
	return body, changed, nil
}

func decodeBrotli(body []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
}

func decodeGzip(body []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return readAndClose(gr)
}

func decodeZstd(body []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}

// decodeDeflate accepts zlib-wrapped data as the RFC requires and falls back
// to raw DEFLATE, which some servers send instead.
func decodeDeflate(body []byte) ([]byte, error) {
	if zr, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
		return readAndClose(zr)
	}
	return readAndClose(flate.NewReader(bytes.NewReader(body)))
}

func readAndClose(rc io.ReadCloser) ([]byte, error) {
	out, err := io.ReadAll(rc)
	cerr := rc.Close()
	if err != nil {
		return nil, err
	}
	if cerr != nil {
		return nil, cerr
	}
	return out, nil
}
