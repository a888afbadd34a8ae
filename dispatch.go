package mmmratp

import "encoding/json"

// Event names the messages exchanged with the display layer.
type Event string

// Outbound events carry fetched data; inbound events request a fetch.
const (
	EventDataTimetables Event = "DATA_TIMETABLES"
	EventDataTraffic    Event = "DATA_TRAFFIC"
	EventDataAll        Event = "DATA_ALL"

	EventFetchTimetables Event = "FETCH_TIMETABLES"
	EventFetchTraffic    Event = "FETCH_TRAFFIC"
	EventFetchAll        Event = "FETCH_ALL"
)

// Message frames one inbound event and its raw payload as received from
// the message channel.
type Message struct {
	Event   Event           `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Outbound is one event on its way to the display layer.
type Outbound struct {
	Event   Event `json:"event"`
	Payload any   `json:"payload"`
}

// Dispatcher sends events to the display layer. Implementations are
// fire-and-forget: no acknowledgement and no delivery guarantee beyond the
// channel's own ordering.
type Dispatcher interface {
	Dispatch(event Event, payload any)
}

// NopDispatcher discards every event. Useful when the caller only wants
// the return values of the fetch operations.
type NopDispatcher struct{}

// Dispatch implements Dispatcher.
func (NopDispatcher) Dispatch(Event, any) {}

// ChannelDispatcher forwards events onto a buffered Go channel. Sends
// never block: a message that does not fit in the buffer is dropped.
type ChannelDispatcher struct {
	ch chan Outbound
}

// NewChannelDispatcher creates a dispatcher with the given buffer size;
// sizes below one fall back to a small default.
func NewChannelDispatcher(buffer int) *ChannelDispatcher {
	if buffer < 1 {
		buffer = 16
	}
	return &ChannelDispatcher{ch: make(chan Outbound, buffer)}
}

// Dispatch implements Dispatcher.
func (d *ChannelDispatcher) Dispatch(event Event, payload any) {
	select {
	case d.ch <- Outbound{Event: event, Payload: payload}:
	default:
	}
}

// Messages returns the receive side of the channel.
func (d *ChannelDispatcher) Messages() <-chan Outbound {
	return d.ch
}
