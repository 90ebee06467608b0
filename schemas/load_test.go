package schemas

import (
	"context"
	"strings"
	"testing"

	sr "github.com/kroiauto/schemarule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const carsData = `[
  {
    "name": "Skoda Octavia 2.0 TDI",
    "price": "€12 990",
    "year": "2018",
    "fuel": "Diesel",
    "transmission": "Automaattinen",
    "km": "123 000 km",
    "images": ["skoda-octavia-20-tdi-1.jpg"],
    "mainImage": "skoda-octavia-20-tdi-1.jpg"
  },
  {
    "name": "  Volvo   V60 ",
    "price": "N/A",
    "year": "2016",
    "fuel": "",
    "transmission": "",
    "km": "",
    "images": [],
    "mainImage": ""
  }
]`

func TestLoadCars(t *testing.T) {
	results, err := LoadCars(context.Background(), strings.NewReader(carsData))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Empty(t, results[0].Markers)
	assert.Equal(t, 1, results[1].Index)
	assert.Equal(t, "Volvo V60", results[1].Car.Name)

	ms := Markers(results)
	require.Len(t, ms, 2)
	assert.Equal(t, sr.Marker{Level: sr.LevelError, Path: "1.price", Message: "price must be a euro amount such as €12 990"}, ms[0])
	assert.Equal(t, sr.Marker{Level: sr.LevelWarning, Path: "1.images", Message: "listing has no images"}, ms[1])

	err = ms.Err()
	require.Error(t, err)
	assert.Contains(t, err.(sr.ValidationErrors), "1.price")
}

func TestLoadCarsInvalidJSON(t *testing.T) {
	_, err := LoadCars(context.Background(), strings.NewReader(`{"name": "not a list"}`))
	assert.ErrorContains(t, err, "decode cars")

	_, err = LoadCars(context.Background(), strings.NewReader(`[{"name": 5}]`))
	assert.ErrorContains(t, err, "decode car 0")
}

func TestLoadCarsEmpty(t *testing.T) {
	results, err := LoadCars(context.Background(), strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, Markers(results))
}

func TestLoadCarsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadCars(ctx, strings.NewReader(carsData))
	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "load car 0")
}
