package model

// DishonestyMatrix is the weighted category-to-pattern mapping the forensic
// engine uses to flag inconsistency signals in evidence text.
// Struct field order defines JSON key order; the emitted files are diffed by
// hand downstream, so ordering is kept stable.
type DishonestyMatrix struct {
	Version        string   `json:"version"`
	Contradictions Category `json:"contradictions"`
	Omissions      Category `json:"omissions"`
	Manipulations  Category `json:"manipulations"`
}

// Category groups one class of dishonesty signal: a severity weight,
// human-readable examples, and textual matching templates in priority order.
type Category struct {
	Weight   int      `json:"weight"`
	Examples []string `json:"examples"`
	Patterns []string `json:"patterns"`
}

// ExtractionProtocol describes the engine's three-step text analysis
// pipeline: lexical triggers, category tags, then severity scoring.
type ExtractionProtocol struct {
	Version       string       `json:"version"`
	Step1Keywords []string     `json:"step1_keywords"`
	Step2Tags     []string     `json:"step2_tags"`
	Step3Scoring  ScoringScale `json:"step3_scoring"`
}

// ScoringScale maps severity names to their scoring levels. A struct rather
// than a map so low/medium/high keep their emission order.
type ScoringScale struct {
	Low    SeverityLevel `json:"low"`
	Medium SeverityLevel `json:"medium"`
	High   SeverityLevel `json:"high"`
}

// SeverityLevel is one rung of the scoring scale. Color is a #RRGGBB hex
// code used by the engine's result UI.
type SeverityLevel struct {
	Weight int    `json:"weight"`
	Color  string `json:"color"`
}
