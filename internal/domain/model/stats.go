package model

// Stats is derived state cached for display latency only; each field is
// recomputed independently by its own subscription and the combination can
// be transiently inconsistent.
type Stats struct {
	TotalUsers      int `json:"total_users"`
	TotalReports    int `json:"total_reports"`
	ResolvedReports int `json:"resolved_reports"`
}

type ChartEntry struct {
	Name    string `json:"name"`
	Reports int    `json:"reports"`
}
