package mmmratp

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status                 string `json:"status"`
	TimetablesUpdatedEpoch int64  `json:"timetables_updated_epoch"`
	TrafficUpdatedEpoch    int64  `json:"traffic_updated_epoch"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	timetablesAt, trafficAt := s.store.LastUpdated()
	resp := healthResponse{Status: "ok"}
	if !timetablesAt.IsZero() {
		resp.TimetablesUpdatedEpoch = timetablesAt.Unix()
	}
	if !trafficAt.IsZero() {
		resp.TrafficUpdatedEpoch = trafficAt.Unix()
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
