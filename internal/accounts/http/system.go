package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/campuspass/internal/accounts/store"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/aussiebroadwan/campuspass/pkg/jwtx"
)

// JWKSHandler publishes the signing key set for token verification.
//
//	@Summary		JWKS Endpoint
//	@Description	Public keys for verifying access tokens, per RFC 7517.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	jwtx.JWKS	"keys"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(signer *jwtx.EdDSASigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, jwtx.JWKS{
			Keys: []jwtx.JWK{signer.PublicJWK()},
		})
	})
}

// LivezHandler reports process liveness.
//
//	@Summary		Liveness Endpoint
//	@Description	Returns ok while the process is running.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	map[string]string	"status, version, uptime"
//	@Router			/livez [get].
func LivezHandler(version string, start time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
			"uptime":  time.Since(start).Round(time.Second).String(),
		})
	})
}

// ReadyzHandler reports readiness by pinging the database.
//
//	@Summary		Readiness Endpoint
//	@Description	Returns ok when the database is reachable.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	map[string]string	"status"
//	@Failure		503	{object}	map[string]string	"status"
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
			})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})
}
