package config

// ServerConfig contains the monitoring server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// APIConfig points the client at the upstream waiting-time API
type APIConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// UpdatesConfig sets the per-category refresh intervals used in serve mode
type UpdatesConfig struct {
	TimetablesIntervalMS int `yaml:"timetablesIntervalMS" validate:"gte=0"`
	TrafficIntervalMS    int `yaml:"trafficIntervalMS" validate:"gte=0"`
}

// Request is one configured line/station/direction query. Station and
// Direction are only meaningful for timetable requests; traffic requests
// leave them empty.
type Request struct {
	Type      string `yaml:"type" validate:"required,oneof=metro rer tramway"`
	Line      string `yaml:"line" validate:"required"`
	Station   string `yaml:"station"`
	Direction string `yaml:"direction" validate:"omitempty,oneof=A R"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server     ServerConfig  `yaml:"server"`
	API        APIConfig     `yaml:"api"`
	Updates    UpdatesConfig `yaml:"updates"`
	Timetables []Request     `yaml:"timetables" validate:"dive"`
	Traffic    []Request     `yaml:"traffic" validate:"dive"`
}
