package schemas

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	sr "github.com/kroiauto/schemarule"
	"github.com/kroiauto/schemarule/transform"
)

// Known values for the fuel and transmission fields, in the dealer site's
// Finnish wording.
var (
	Fuels         = []string{"Bensiini", "Diesel", "Hybridi", "Sähkö", "Kaasu"}
	Transmissions = []string{"Automaattinen", "Manuaalinen"}
)

// Car is a vehicle listing as stored in cars-data.json.
type Car struct {
	Name         string   `json:"name"`
	Price        string   `json:"price"`
	Year         string   `json:"year"`
	Fuel         string   `json:"fuel"`
	Transmission string   `json:"transmission"`
	Km           string   `json:"km"`
	Images       []string `json:"images"`
	MainImage    string   `json:"mainImage"`
}

var (
	priceDigits = regexp.MustCompile(`^€?\s*([\d\s.,]+?)\s*(€|EUR)?$`)
	kmPattern   = regexp.MustCompile(`^[\d\s]+ km$`)
	yearPattern = regexp.MustCompile(`^(19|20)\d{2}$`)
)

// amount checks a parsed price.
var amount = sr.New().Positive().Precision(2).(sr.Validator)

// nowYear is replaced in tests.
var nowYear = func() int { return time.Now().Year() }

func (c *Car) Rules() []*sr.FieldRules {
	return []*sr.FieldRules{
		sr.Field(&c.Name, sr.New().Required().Min(4)),
		sr.Field(&c.Price, sr.New().Required().Custom(validPrice)),
		sr.Field(&c.Year, sr.New().Required().Custom(validYear)),
		sr.Field(&c.Fuel, sr.New().Custom(oneOf(Fuels)).Warning("unknown fuel type")),
		sr.Field(&c.Transmission, sr.New().Custom(oneOf(Transmissions)).Warning("unknown transmission")),
		sr.Field(&c.Km, sr.New().Custom(validKm).Warning(`mileage should look like "123 000 km"`)),
		sr.Field(&c.Images, sr.New().Required().Min(1).Warning("listing has no images")),
		sr.Field(&c.MainImage, sr.New().Custom(c.mainImageListed)),
	}
}

// Normalize collapses the whitespace left over from scraping.
func (c *Car) Normalize() {
	transform.StructCollapseSpace(c)
}

// ParsePrice returns the amount in whole euros from strings such as
// "€12 990", "12.990 €" or "12 990,00 EUR".
func ParsePrice(s string) (float64, bool) {
	m := priceDigits.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	digits := strings.Join(strings.Fields(m[1]), "")
	// A comma or dot followed by exactly two digits at the end is a decimal
	// separator; any other is a thousands separator.
	var cents string
	if n := len(digits); n > 3 && (digits[n-3] == ',' || digits[n-3] == '.') {
		digits, cents = digits[:n-3], digits[n-2:]
	}
	digits = strings.NewReplacer(",", "", ".", "").Replace(digits)
	if digits == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(digits+"."+cents+"0", 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func validPrice(v any) sr.Verdict {
	s, _ := v.(string)
	if s == "" {
		return sr.Valid(true)
	}
	f, ok := ParsePrice(s)
	if !ok {
		return sr.Message("price must be a euro amount such as €12 990")
	}
	if ms := amount.Validate(f); len(ms) > 0 {
		return sr.Message("price " + ms[0].Message)
	}
	if f == 0 {
		return sr.Message("price must be greater than zero")
	}
	return sr.Valid(true)
}

func validYear(v any) sr.Verdict {
	s, _ := v.(string)
	if s == "" {
		return sr.Valid(true)
	}
	if !yearPattern.MatchString(s) {
		return sr.Message("year must be a four digit year")
	}
	y, _ := strconv.Atoi(s)
	if y > nowYear()+1 {
		return sr.Message("year is in the future")
	}
	return sr.Valid(true)
}

func validKm(v any) sr.Verdict {
	s, _ := v.(string)
	return sr.Valid(s == "" || kmPattern.MatchString(s))
}

func oneOf(values []string) sr.CustomFunc {
	return func(v any) sr.Verdict {
		s, _ := v.(string)
		return sr.Valid(s == "" || slices.Contains(values, s))
	}
}

func (c *Car) mainImageListed(v any) sr.Verdict {
	s, _ := v.(string)
	if s == "" || len(c.Images) == 0 || slices.Contains(c.Images, s) {
		return sr.Valid(true)
	}
	return sr.Message("main image must be one of the listing's images")
}
