// Package types holds the plain values exchanged between the timing engine,
// the formatter and the renderers.
package types
