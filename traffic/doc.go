// Package traffic holds the pure core of the pipeline: the time-of-day trip
// filter and the per-station arrival/departure aggregation. Both functions
// are side-effect free and idempotent over their inputs.
package traffic
