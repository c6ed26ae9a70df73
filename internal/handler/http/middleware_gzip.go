package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/beer-battle/internal/app"
	"github.com/MKhiriev/beer-battle/internal/utils"
)

// maxDocumentBodySize caps a document body after decompression.
const maxDocumentBodySize = 1 << 20

var gzipReaders sync.Pool

// withGZipRequest decompresses request bodies sent with
// "Content-Encoding: gzip". Responses are compressed by chi's Compress.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		body, err := newGzipBody(r.Body)
		if err != nil {
			utils.WriteError(w, app.MsgInvalidGzip, http.StatusBadRequest)
			return
		}

		r.Body = http.MaxBytesReader(w, body, maxDocumentBodySize)
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

// gzipBody is a pooled gzip reader over a request body. Close returns the
// reader to the pool once.
type gzipBody struct {
	*gzip.Reader
	once sync.Once
}

func newGzipBody(src io.Reader) (*gzipBody, error) {
	zr, ok := gzipReaders.Get().(*gzip.Reader)
	if !ok {
		zr = new(gzip.Reader)
	}
	if err := zr.Reset(src); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &gzipBody{Reader: zr}, nil
}

func (b *gzipBody) Close() error {
	var err error
	b.once.Do(func() {
		err = b.Reader.Close()
		gzipReaders.Put(b.Reader)
	})
	return err
}
