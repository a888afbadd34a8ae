package ratp

// LineType identifies one of the network's transport modes
type LineType string

const (
	LineTypeBus     LineType = "bus"
	LineTypeMetro   LineType = "metro"
	LineTypeRER     LineType = "rer"
	LineTypeTramway LineType = "tramway"
)

// APIPath returns the plural path segment the API uses for t. Callers are
// expected to pass one of the supported line types; anything else gets a
// naive pluralization.
func (t LineType) APIPath() string {
	switch t {
	case LineTypeBus:
		return "buses"
	case LineTypeMetro:
		return "metros"
	case LineTypeRER:
		return "rers"
	case LineTypeTramway:
		return "tramways"
	}
	return string(t) + "s"
}

// Direction selects one of a line's two travel directions
type Direction string

const (
	DirectionA Direction = "A"
	DirectionR Direction = "R"
)

// Station is one stop on a line as returned by /stations
type Station struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Schedule is one upcoming departure as returned by /schedules. Message is
// free text: a countdown ("3 mn"), a clock time, a train-at-platform
// notice, or an unavailability notice.
type Schedule struct {
	Message     string `json:"message"`
	Destination string `json:"destination"`
}

// Traffic is the line status object returned by /traffic. Slug is the
// machine-readable status code; Title and Message are display text.
type Traffic struct {
	Line    string `json:"line"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
