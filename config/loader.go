package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads and validates the configuration from the first readable path.
// With no arguments it looks for config.yml in the working directory.
func Load(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}
	return Parse(data)
}

// Parse decodes raw YAML configuration, validates it, and applies defaults.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	// timetable requests also need a station slug and a direction
	for i, r := range cfg.Timetables {
		if r.Station == "" || r.Direction == "" {
			return AppConfig{}, fmt.Errorf("timetables[%d]: station and direction are required", i)
		}
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16180
	}
	if cfg.Updates.TimetablesIntervalMS == 0 {
		cfg.Updates.TimetablesIntervalMS = 20000
	}
	if cfg.Updates.TrafficIntervalMS == 0 {
		cfg.Updates.TrafficIntervalMS = 60000
	}
	return cfg, nil
}
