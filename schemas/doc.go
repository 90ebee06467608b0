// Package schemas holds the content documents of the dealer site together
// with their validation rules.
package schemas
