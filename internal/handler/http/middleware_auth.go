package http

import (
	"net/http"

	"github.com/MKhiriev/beer-battle/internal/app"
	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/utils"
)

const ownerQueryParam = "owner"

// auth authenticates the owner JWT of the request and stores its subject in
// the request context (see [utils.WithOwnerID]).
//
// Requests without a valid bearer token are rejected with 401. A request
// whose owner query parameter names another owner is rejected with 403; the
// owner of a PUT body is checked by the document service.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ownerID, err := utils.ValidateOwnerToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		if requested := r.URL.Query().Get(ownerQueryParam); requested != "" && requested != ownerID {
			log.Warn().Err(ErrOwnerMismatch).
				Str("owner_id", ownerID).
				Str("requested_owner_id", requested).
				Send()
			utils.WriteError(w, app.MsgForbidden, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithOwnerID(r.Context(), ownerID)))
	})
}

// requestOwner is the owner a document request addresses: the owner query
// parameter, or the authenticated owner when it is absent.
func requestOwner(r *http.Request) string {
	if owner := r.URL.Query().Get(ownerQueryParam); owner != "" {
		return owner
	}
	owner, _ := utils.GetOwnerIDFromContext(r.Context())
	return owner
}
