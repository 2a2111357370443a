package enums

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"
)

func (s ReportStatus) Valid() bool {
	return s == ReportStatusPending || s == ReportStatusResolved
}

// Toggled returns the opposite status. Resolution is a toggle relative to
// the status supplied by the operator, not an unconditional set.
func (s ReportStatus) Toggled() ReportStatus {
	if s == ReportStatusResolved {
		return ReportStatusPending
	}
	return ReportStatusResolved
}
