package http

import (
	"net/http"
	"time"

	"github.com/opengamebackend/auth/pkg/authsdk"
	"github.com/opengamebackend/auth/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Reports that the process is up, with uptime and build version.
//	@Description	Answers 200 OK for as long as the service is running; dependency
//	@Description	health is covered by /readyz instead.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, authsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
