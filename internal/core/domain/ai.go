package domain

// SalaryPrediction is the AI service's market-value estimate for a student.
type SalaryPrediction struct {
	MinSalary       float64 `json:"minSalary"`
	MaxSalary       float64 `json:"maxSalary"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

// Available reports whether the service produced an estimate.
func (s *SalaryPrediction) Available() bool {
	return s != nil && s.MaxSalary > 0
}
