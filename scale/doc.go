// Package scale maps traffic numbers to marker visuals: a square-root radius
// scale whose domain tracks the current filtered dataset, and a fixed
// three-bucket quantization of the departure ratio.
package scale
