package models

// MetricRecord represents one (jurisdiction, metric) pair produced by
// pivoting a wide per-state sheet.
type MetricRecord struct {
	// StateJurisdictionID is the resolved jurisdiction code, e.g. "USA-TX".
	StateJurisdictionID string `json:"state_jurisdiction_id"`
	// MetricName is the source column name.
	MetricName string `json:"metric_name"`
	// MetricValue is the cleaned cell value rendered as text.
	MetricValue string `json:"metric_value"`
	// Notes is always null in generated output.
	Notes *string `json:"notes"`
	// EffectiveDate is always null in generated output.
	EffectiveDate *string `json:"effective_date"`
}
