/*
Package markers maintains the persistent visual marker set, one marker per
station keyed by its short name.

Reconciliation is a keyed join between the live set and a freshly aggregated
station snapshot: retained markers are updated in place (radius, flow bucket,
tooltip), new stations get created markers, vanished stations get their
markers removed. Attribute-only changes never destroy and recreate a marker,
so a map frontend can animate updates instead of redrawing from scratch.

Screen positions are a separate concern: Reposition projects every marker
through the current Projector and runs on every redraw, including pure
viewport changes where the traffic attributes are untouched.
*/
package markers
