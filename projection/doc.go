// Package projection defines the narrow capability the core needs from a map
// engine: turning geographic coordinates into screen coordinates. A
// Web-Mercator viewport implementation is provided for the built-in service
// and for tests; real map engines satisfy the same interface.
package projection
