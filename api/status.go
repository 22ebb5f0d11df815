package api

import (
	"net/http"
	"time"
)

type statusResponse struct {
	Status      string `json:"status"`
	Uptime      string `json:"uptime"`
	Version     string `json:"version"`
	CodesStored int    `json:"codes_stored"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	// Opportunistic retention sweep, same as the one the background loop runs.
	s.Store.Sweep(s.MaxAge, s.Log)

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	count, err := s.Store.Count()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Status:      "ok",
		Uptime:      time.Since(s.StartTime).Truncate(time.Second).String(),
		Version:     s.Version,
		CodesStored: count,
	})
}
