/*
Package dashboard wires the pipeline together.

The Orchestrator owns the canonical unfiltered datasets, the current
time-of-day filter, the radius scale and the live marker set. A filter change
runs the full pipeline (filter trips, aggregate traffic, rebuild the radius
scale, reconcile markers, re-project); a viewport change re-projects the
existing markers and touches nothing else. All event entry points serialize
on one mutex, so a redraw pass is atomic from any caller's perspective.
*/
package dashboard
