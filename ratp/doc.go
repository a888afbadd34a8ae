// Package ratp talks to the public waiting-time API: station lists for a
// line, upcoming departures for a station, and line traffic status.
//
// Every endpoint returns JSON with the payload under a "result" wrapper;
// the client unwraps it and hands back the raw wire types. Normalization
// of the free-text fields happens upstream of this package.
package ratp
