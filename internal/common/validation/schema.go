// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// assumptionsSchema guards the assumptions document at the API boundary.
// Every rate is a percentage, so zero is legal everywhere except the
// loan term, which must cover at least one year.
const assumptionsSchema = `{
	"type": "object",
	"required": [
		"downPaymentPercent",
		"interestRate",
		"loanTermYears",
		"closingCostsPercent",
		"vacancyRatePercent",
		"managementFeePercent",
		"maintenancePercent",
		"insuranceAnnual",
		"appreciationRate"
	],
	"properties": {
		"downPaymentPercent":   {"type": "number", "minimum": 0, "maximum": 100},
		"interestRate":         {"type": "number", "minimum": 0},
		"loanTermYears":        {"type": "integer", "minimum": 1},
		"closingCostsPercent":  {"type": "number", "minimum": 0},
		"vacancyRatePercent":   {"type": "number", "minimum": 0, "maximum": 100},
		"managementFeePercent": {"type": "number", "minimum": 0, "maximum": 100},
		"maintenancePercent":   {"type": "number", "minimum": 0},
		"insuranceAnnual":      {"type": "number", "minimum": 0},
		"appreciationRate":     {"type": "number", "minimum": 0}
	},
	"additionalProperties": false
}`

var assumptionsSchemaLoader = gojsonschema.NewStringLoader(assumptionsSchema)

// ValidateAssumptions checks a raw assumptions JSON document against the
// schema and returns a single error listing every violation.
func ValidateAssumptions(doc []byte) error {
	result, err := gojsonschema.Validate(assumptionsSchemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid assumptions: %s", strings.Join(problems, "; "))
}
