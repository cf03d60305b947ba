/*
Package server exposes the rendered marker set over HTTP.

Requests carry the two event kinds the dashboard reacts to: a "filter" query
parameter (the slider value, -1 for no filter) and viewport parameters
(centerLon/centerLat/zoom/width/height). Responses are JSON or GeoJSON
snapshots; identical parameter sets are served from a memoizing render cache.
*/
package server
