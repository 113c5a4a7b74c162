// Package generator expands a catalogue of kinds into the type aliases of
// the specialized package.
package generator
