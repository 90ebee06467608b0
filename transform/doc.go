// Package transform rewrites the string fields of a document in place.
// It is meant for [schemarule.Normalizer] implementations.
package transform
