package taxicompare

import (
	"net/http"
	"time"
)

type snapshotHealth struct {
	Period string `json:"period"`
	Trips  int    `json:"trips"`
}

type healthResponse struct {
	Status    string           `json:"status"`
	Ready     bool             `json:"ready"`
	Snapshots []snapshotHealth `json:"snapshots"`
	Zones     int              `json:"zones"`
	LoadedAt  string           `json:"loaded_at,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	engine, err := s.svc.Engine()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "loading", Snapshots: []snapshotHealth{}})
		return
	}
	st := engine.Store()
	resp := healthResponse{Status: "ok", Ready: true, Zones: st.ZoneCount()}
	for _, snap := range st.Snapshots() {
		resp.Snapshots = append(resp.Snapshots, snapshotHealth{Period: snap.Label, Trips: snap.Len()})
	}
	if at, ok := s.svc.LoadedAt(); ok {
		resp.LoadedAt = at.UTC().Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}
