// Package schemarule provides chainable validation rules for content
// documents, with OpenAPI 3 schema generation.
//
// Build a [Rule] per field by chaining constraints:
//
//	price := schemarule.New().Required().Positive().Precision(2)
//
// Bind rules to fields by implementing [Ruler] on your document type:
//
//	func (c *Car) Rules() []*FieldRules {
//	    return []*FieldRules{
//	        Field(&c.Name, New().Required().Min(4)),
//	        Field(&c.Email, New().Email().Warning("contact address looks wrong")),
//	    }
//	}
//
// Then validate:
//
//	markers := ValidateDocument(&car)
//	err := markers.Err() // nil unless an error-level marker exists
//
// Rules raised with [Rule.Warning] produce warning markers that never make
// [Markers.Err] fail.
//
// Sub-packages:
//   - schemas – document types with their rules (car listings)
//   - transform – string rewriting helpers for [Normalizer] implementations
package schemarule
