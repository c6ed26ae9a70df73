package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/beer-battle/internal/app"
	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/utils"
)

// checkHash verifies the HashSHA256 header against the HMAC of the raw
// request body. It is a no-op when no hash key is configured.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashFromRequest := r.Header.Get(utils.HashHeader)
		if !h.hasher.Verify(body, hashFromRequest) {
			log.Error().Str("func", "*Handler.checkHash").
				Str("hash from request", hashFromRequest).
				Str("hashed body", h.hasher.HashString(body)).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.checkHash").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
