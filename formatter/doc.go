// Package formatter serializes rendered dashboard snapshots for delivery:
// a plain JSON document for the built-in frontend and a GeoJSON
// FeatureCollection for generic map tooling.
package formatter
