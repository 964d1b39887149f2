// Package assets holds the literal rule asset definitions. Content is fixed:
// nothing here is computed from external input, so generation stays
// deterministic run to run.
package assets

import "github.com/verum-omnis/ruleforge/internal/model"

// SchemaVersion tags both rule assets.
const SchemaVersion = "1.0"

// DefaultDishonestyMatrix returns the dishonesty matrix shipped with the
// engine. Pattern order is significant for downstream matching priority.
func DefaultDishonestyMatrix() model.DishonestyMatrix {
	return model.DishonestyMatrix{
		Version: SchemaVersion,
		Contradictions: model.Category{
			Weight:   3,
			Examples: []string{"Opposing statements vs evidence"},
			Patterns: []string{
				"no deal.*invoice",
				"denied.*admitted",
				"refused.*accepted",
				"never.*always",
			},
		},
		Omissions: model.Category{
			Weight:   2,
			Examples: []string{"Cropped screenshots"},
			Patterns: []string{
				"selective.*edit",
				"missing.*context",
				"cropped.*screenshot",
			},
		},
		Manipulations: model.Category{
			Weight:   3,
			Examples: []string{"Altered documents"},
			Patterns: []string{
				"modified.*original",
				"altered.*date",
			},
		},
	}
}

// DefaultExtractionProtocol returns the three-step extraction protocol
// shipped with the engine.
func DefaultExtractionProtocol() model.ExtractionProtocol {
	return model.ExtractionProtocol{
		Version: SchemaVersion,
		Step1Keywords: []string{
			"admin", "deny", "forged", "access", "delete",
			"refuse", "invoice", "profit", "transfer", "payment",
		},
		Step2Tags: []string{
			"#Cybercrime", "#Fraud", "#Oppression", "#FiduciaryBreach",
		},
		Step3Scoring: model.ScoringScale{
			Low:    model.SeverityLevel{Weight: 1, Color: "#4CAF50"},
			Medium: model.SeverityLevel{Weight: 2, Color: "#FF9800"},
			High:   model.SeverityLevel{Weight: 3, Color: "#F44336"},
		},
	}
}
