package mmmratp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerSnapshotEndpoints(t *testing.T) {
	store := NewSnapshotStore()
	store.CommitTimetables([]StationTimetable{{Type: "metro", Line: "1", Station: "Bastille"}}, time.Now())
	store.CommitTraffic([]TrafficInfo{{Type: "rer", Line: "A", Status: StatusNormal}}, time.Now())
	s := NewServer(store, 0)

	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/traffic", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var traffic []TrafficInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &traffic))
	require.Len(t, traffic, 1)
	assert.Equal(t, StatusNormal, traffic[0].Status)

	rec = httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/snapshot", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Len(t, snapshot.Timetables, 1)
	assert.Len(t, snapshot.Traffic, 1)
}

func TestServerHealth(t *testing.T) {
	store := NewSnapshotStore()
	s := NewServer(store, 0)

	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var health healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Zero(t, health.TimetablesUpdatedEpoch)

	store.CommitTraffic(nil, time.Unix(1700000000, 0))
	rec = httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, int64(1700000000), health.TrafficUpdatedEpoch)
}
