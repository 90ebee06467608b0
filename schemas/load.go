package schemas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	sr "github.com/kroiauto/schemarule"
)

// Result is the outcome of validating one car of a listing file.
type Result struct {
	Index   int
	Car     Car
	Markers sr.Markers
}

// LoadCars decodes a JSON array of cars from r, normalizes each car, and
// validates it. Marker paths are prefixed with the car's index, e.g.
// "3.price". The error is non-nil only when r does not hold a JSON array of
// car objects, or when ctx is done before every car is validated.
func LoadCars(ctx context.Context, r io.Reader) ([]Result, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode cars: %w", err)
	}
	results := make([]Result, 0, len(raw))
	for i, b := range raw {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load car %d: %w", i, err)
		}
		var c Car
		ms, err := sr.UnmarshalAndValidate(b, &c)
		if err != nil {
			return nil, fmt.Errorf("decode car %d: %w", i, err)
		}
		results = append(results, Result{Index: i, Car: c, Markers: ms.WithPath(strconv.Itoa(i))})
	}
	return results, nil
}

// Markers returns the findings of every result in order.
func Markers(results []Result) sr.Markers {
	var out sr.Markers
	for _, r := range results {
		out = append(out, r.Markers...)
	}
	return out
}
