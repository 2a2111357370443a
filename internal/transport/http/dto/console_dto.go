package dto

type ReportItem struct {
	ID          string `json:"id"`
	CreatedAt   int64  `json:"created_at"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Name        string `json:"name"`
	MatterType  string `json:"matter_type"`
	UserID      string `json:"user_id"`
	Status      string `json:"status"`
	Response    string `json:"response,omitempty"`
	ResolvedAt  *int64 `json:"resolved_at,omitempty"`
}

type ReportsResponse struct {
	Reports []ReportItem `json:"reports"`
}

type StatsResponse struct {
	TotalUsers      int `json:"total_users"`
	TotalReports    int `json:"total_reports"`
	ResolvedReports int `json:"resolved_reports"`
}

type ChartEntryItem struct {
	Name    string `json:"name"`
	Reports int    `json:"reports"`
}

type CommunityChartResponse struct {
	Entries []ChartEntryItem `json:"entries"`
}

type RespondRequest struct {
	CurrentStatus string `json:"current_status"`
	Response      string `json:"response"`
	UserID        string `json:"user_id"`
}

type RespondResponse struct {
	ReportID      string `json:"report_id"`
	Status        string `json:"status"`
	StatusApplied bool   `json:"status_applied"`
	Notified      bool   `json:"notified"`
}

type BlockUserResponse struct {
	OK bool `json:"ok"`
}

type SyncStatusResponse struct {
	Running   bool   `json:"running"`
	LastError string `json:"last_error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
