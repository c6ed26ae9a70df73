package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/beer-battle/internal/service"
)

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")

	rr := serve(h.Init(), http.MethodGet, "/api/version", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "v1.2.3", rr.Body.String())
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "storage up", wantStatus: http.StatusOK},
		{name: "storage down", pingErr: fmt.Errorf("%w: %w", service.ErrStorageUnavailable, errors.New("refused")), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, "")
			m.health.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)

			rr := serve(h.Init(), http.MethodGet, "/api/health", nil, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "OK", rr.Body.String())
			}
		})
	}
}
