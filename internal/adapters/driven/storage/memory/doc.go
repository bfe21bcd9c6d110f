// Package memory provides in-memory implementations of the driven ports.
// They back tests and dry runs where no files should be touched.
package memory
