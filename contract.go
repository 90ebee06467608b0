package schemarule

type (
	// Rule is a chainable set of constraints for a single document field.
	// Every method returns a Rule so constraints compose in one expression:
	//
	//	New().Required().Min(0).Precision(2).Warning("check the price")
	Rule interface {
		Required() Rule
		Email() Rule
		Min(n float64) Rule
		Max(n float64) Rule
		Length(n int) Rule
		Positive() Rule
		Integer() Rule
		Precision(n int) Rule
		Custom(fn CustomFunc) Rule
		Error(message string) Rule
		Warning(message string) Rule
	}

	// CustomFunc is the predicate accepted by [Rule.Custom].
	CustomFunc func(value any) Verdict

	// Verdict is the result of a [CustomFunc]: either [Valid] or [Message].
	Verdict interface {
		verdict()
	}

	// Valid reports a plain pass or fail.
	Valid bool

	// Message fails the value with a description of what is wrong.
	Message string
)

func (Valid) verdict()   {}
func (Message) verdict() {}
