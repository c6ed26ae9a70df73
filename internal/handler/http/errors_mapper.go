package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/beer-battle/internal/app"
	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/service"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/internal/utils"
	"github.com/MKhiriev/beer-battle/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:       http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrOwnerMismatch:       http.StatusForbidden,
	service.ErrDocumentNotFound:    http.StatusNotFound,
	service.ErrStorageUnavailable:  http.StatusServiceUnavailable,

	store.ErrDocumentOwnerMismatch: http.StatusForbidden,
	store.ErrRecordNotFound:        http.StatusNotFound,

	store.ErrEncodingFields:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the response body for err. Validation messages
// are passed through; everything else gets a fixed message for its status.
func messageFromError(err error, status int) string {
	if msg := validators.Message(err); msg != "" {
		return msg
	}

	switch status {
	case http.StatusBadRequest:
		return app.MsgInvalidDataProvided
	case http.StatusForbidden:
		return app.MsgForbidden
	case http.StatusNotFound:
		return app.MsgDocumentNotFound
	case http.StatusServiceUnavailable:
		return http.StatusText(http.StatusServiceUnavailable)
	default:
		return app.MsgInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteError(w, messageFromError(err, status), status)
}
