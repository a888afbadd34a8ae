// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// It carries the upstream API endpoint, the monitoring server settings, and
// the lists of timetable and traffic requests to poll.
package config
