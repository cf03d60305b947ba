// Package config loads and validates the bikeflow application configuration.
//
// Configuration lives in a config.yml file and covers the HTTP server and
// the station/trip dataset sources. Validation uses struct tags via
// go-playground/validator; defaults are applied after a successful load.
package config
