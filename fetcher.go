package mmmratp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NomadArchitect/mmm-ratp/config"
	"github.com/NomadArchitect/mmm-ratp/ratp"
)

// API is the upstream capability the fetcher depends on. *ratp.Client
// implements it.
type API interface {
	Stations(ctx context.Context, lineType ratp.LineType, line string) ([]ratp.Station, error)
	Schedules(ctx context.Context, lineType ratp.LineType, line, station string, direction ratp.Direction) ([]ratp.Schedule, error)
	Traffic(ctx context.Context, lineType ratp.LineType, line string) (ratp.Traffic, error)
}

// Fetcher runs fetch cycles against the upstream API, normalizes the
// results, and keeps the previous/current snapshot pair. Cycles are
// serialized per category so a slow cycle cannot race a later one through
// the snapshot rotation. The first failed request aborts the whole cycle
// for its category: nothing is committed and nothing is dispatched.
type Fetcher struct {
	api   API
	disp  Dispatcher
	store *SnapshotStore
	now   func() time.Time

	timetablesMu sync.Mutex
	trafficMu    sync.Mutex
}

// NewFetcher wires a fetcher from its API and dispatch capabilities. A nil
// dispatcher discards all events.
func NewFetcher(api API, disp Dispatcher) *Fetcher {
	if disp == nil {
		disp = NopDispatcher{}
	}
	return &Fetcher{api: api, disp: disp, store: NewSnapshotStore(), now: time.Now}
}

// Store exposes the snapshot store for readers such as the monitoring
// server.
func (f *Fetcher) Store() *SnapshotStore {
	return f.store
}

// FetchAllPayload is the inbound payload for EventFetchAll.
type FetchAllPayload struct {
	Timetables []config.Request `json:"timetables"`
	Traffic    []config.Request `json:"traffic"`
}

// HandleMessage routes one inbound message to the matching fetch
// operation; the result reaches the display layer through the dispatcher.
func (f *Fetcher) HandleMessage(ctx context.Context, msg Message) error {
	switch msg.Event {
	case EventFetchTimetables:
		var requests []config.Request
		if err := json.Unmarshal(msg.Payload, &requests); err != nil {
			return fmt.Errorf("%s payload: %w", msg.Event, err)
		}
		_, err := f.FetchTimetables(ctx, requests)
		return err
	case EventFetchTraffic:
		var requests []config.Request
		if err := json.Unmarshal(msg.Payload, &requests); err != nil {
			return fmt.Errorf("%s payload: %w", msg.Event, err)
		}
		_, err := f.FetchTraffic(ctx, requests)
		return err
	case EventFetchAll:
		var payload FetchAllPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("%s payload: %w", msg.Event, err)
		}
		return f.FetchAll(ctx, payload)
	}
	return fmt.Errorf("unknown event %q", msg.Event)
}

// FetchTimetables runs one timetable cycle: fan out over requests, apply
// the estimation fallback against the latest committed data, drop invalid
// passes, commit, and dispatch EventDataTimetables.
func (f *Fetcher) FetchTimetables(ctx context.Context, requests []config.Request) ([]StationTimetable, error) {
	return f.fetchTimetables(ctx, requests, true)
}

func (f *Fetcher) fetchTimetables(ctx context.Context, requests []config.Request, notify bool) ([]StationTimetable, error) {
	f.timetablesMu.Lock()
	defer f.timetablesMu.Unlock()

	now := f.now()
	result := make([]StationTimetable, len(requests))
	g, gctx := errgroup.WithContext(ctx)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			tt, err := f.fetchTimetable(gctx, req, now)
			if err != nil {
				return err
			}
			result[i] = tt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// latest becomes the previous snapshot once this cycle commits; it is
	// the reference for the estimation fallback.
	latest := f.store.CurrentTimetables()
	for i := range result {
		if IsTimetableAvailable(result[i]) || i >= len(latest) || !IsTimetableAvailable(latest[i]) {
			continue
		}
		result[i] = estimateTimetable(result[i], latest[i], now)
	}
	for i := range result {
		result[i].NextPasses = filterValidPasses(result[i].NextPasses)
	}

	f.store.CommitTimetables(result, now)
	if notify {
		f.disp.Dispatch(EventDataTimetables, result)
	}
	return result, nil
}

// fetchTimetable resolves the station name and the schedule list for one
// request concurrently and joins them into a StationTimetable.
func (f *Fetcher) fetchTimetable(ctx context.Context, req config.Request, now time.Time) (StationTimetable, error) {
	lineType := ratp.LineType(req.Type)
	var (
		stationName string
		passes      []NextPass
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stations, err := f.api.Stations(gctx, lineType, req.Line)
		if err != nil {
			return err
		}
		for _, s := range stations {
			if s.Slug == req.Station {
				stationName = s.Name
				return nil
			}
		}
		return fmt.Errorf("station %q not found on %s %s", req.Station, req.Type, req.Line)
	})
	g.Go(func() error {
		schedules, err := f.api.Schedules(gctx, lineType, req.Line, req.Station, ratp.Direction(req.Direction))
		if err != nil {
			return err
		}
		passes = make([]NextPass, len(schedules))
		for i, s := range schedules {
			passes[i] = NextPass{WaitingTime: ParseWaitingTime(s.Message, now), Destination: s.Destination}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return StationTimetable{}, err
	}
	return StationTimetable{
		Type:        lineType,
		Line:        req.Line,
		Station:     stationName,
		NextPasses:  passes,
		RequestedAt: now,
	}, nil
}

// estimateTimetable rebuilds fresh from prior by decaying each known
// waiting time by the wall-clock minutes elapsed since prior was captured.
// RequestedAt stays anchored to prior's capture time.
func estimateTimetable(fresh, prior StationTimetable, now time.Time) StationTimetable {
	elapsed := now.Sub(prior.RequestedAt).Minutes()
	passes := make([]NextPass, len(prior.NextPasses))
	for i, p := range prior.NextPasses {
		np := NextPass{Destination: p.Destination}
		if p.WaitingTime != nil {
			np.WaitingTime = intPtr(int(math.Round(float64(*p.WaitingTime) - elapsed)))
		}
		passes[i] = np
	}
	fresh.NextPasses = passes
	fresh.RequestedAt = prior.RequestedAt
	fresh.Estimated = true
	return fresh
}

// filterValidPasses drops passes whose waiting time went negative;
// explicitly unknown passes survive.
func filterValidPasses(passes []NextPass) []NextPass {
	kept := make([]NextPass, 0, len(passes))
	for _, p := range passes {
		if IsWaitingTimeValid(p.WaitingTime) {
			kept = append(kept, p)
		}
	}
	return kept
}

// FetchTraffic runs one traffic cycle: fan out over requests, normalize
// the status codes, commit, and dispatch EventDataTraffic. Traffic has no
// estimation fallback; whatever the API returns is surfaced as-is.
func (f *Fetcher) FetchTraffic(ctx context.Context, requests []config.Request) ([]TrafficInfo, error) {
	return f.fetchTraffic(ctx, requests, true)
}

func (f *Fetcher) fetchTraffic(ctx context.Context, requests []config.Request, notify bool) ([]TrafficInfo, error) {
	f.trafficMu.Lock()
	defer f.trafficMu.Unlock()

	result := make([]TrafficInfo, len(requests))
	g, gctx := errgroup.WithContext(ctx)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			raw, err := f.api.Traffic(gctx, ratp.LineType(req.Type), req.Line)
			if err != nil {
				return err
			}
			result[i] = TrafficInfo{
				Type:    ratp.LineType(req.Type),
				Line:    req.Line,
				Status:  ParseTrafficStatus(raw.Slug),
				Title:   raw.Title,
				Message: raw.Message,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	f.store.CommitTraffic(result, f.now())
	if notify {
		f.disp.Dispatch(EventDataTraffic, result)
	}
	return result, nil
}

// FetchAll runs both categories concurrently with their individual
// notifications suppressed, then emits one combined EventDataAll. A failed
// category aborts the combined dispatch.
func (f *Fetcher) FetchAll(ctx context.Context, payload FetchAllPayload) error {
	var (
		timetables []StationTimetable
		traffic    []TrafficInfo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		timetables, err = f.fetchTimetables(gctx, payload.Timetables, false)
		return err
	})
	g.Go(func() error {
		var err error
		traffic, err = f.fetchTraffic(gctx, payload.Traffic, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	f.disp.Dispatch(EventDataAll, Snapshot{Timetables: timetables, Traffic: traffic})
	return nil
}
