package handlers

import (
	"net/http"
	"time"

	applog "perfumevault/internal/log"
)

type healthResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

// Health is a simple readiness handler suitable for infrastructure probes.
// It stays 200 without a database so the process can be probed while storage is down.
func Health(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "health check requested", "method", r.Method)
	resp := healthResponse{
		Status:   "ok",
		Database: "unavailable",
		Time:     nowFunc().UTC(),
	}

	if db := dataStore.DB(); db != nil {
		if sqlDB, err := db.DB(); err == nil && sqlDB.PingContext(r.Context()) == nil {
			resp.Database = "ok"
		}
	}

	writeJSON(w, http.StatusOK, resp)
	applog.Debug(r.Context(), "health check responded successfully", "database", resp.Database)
}
