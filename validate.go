package schemarule

import (
	"context"
	"encoding/json"
	"io"
)

// Validate validates doc and returns nil unless an error-level marker is
// found. Warnings never fail. See [ValidateDocument] for the full findings.
func Validate(doc any) error {
	return ValidateDocument(doc).Err()
}

// UnmarshalAndValidate decodes JSON from b into dst, normalizes it, then
// validates. The error is non-nil only when b cannot be decoded; validation
// findings are returned as markers.
func UnmarshalAndValidate(b []byte, dst any) (Markers, error) {
	if err := json.Unmarshal(b, dst); err != nil {
		return nil, err
	}
	normalizeRecursive(dst)
	return ValidateDocument(dst), nil
}

// DecodeAndValidate reads JSON from r into dst using a streaming decoder,
// then normalizes and validates. Use this instead of [UnmarshalAndValidate]
// when reading directly from an [io.Reader] such as a file. It returns
// ctx.Err() if ctx is done before validation starts.
func DecodeAndValidate(ctx context.Context, r io.Reader, dst any) (Markers, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(dst); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	normalizeRecursive(dst)
	return ValidateDocument(dst), nil
}
