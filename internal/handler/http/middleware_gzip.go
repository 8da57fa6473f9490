package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/shopman/internal/app"
	"github.com/MKhiriev/shopman/internal/utils"
)

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGzipBody inflates request bodies sent with "Content-Encoding: gzip".
// Response compression is left to middleware.Compress.
func withGzipBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr := gzipReaderPool.Get().(*gzip.Reader)
		if err := zr.Reset(r.Body); err != nil {
			gzipReaderPool.Put(zr)
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		defer func() {
			zr.Close()
			gzipReaderPool.Put(zr)
		}()

		r.Body = zr
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		next.ServeHTTP(w, r)
	})
}
