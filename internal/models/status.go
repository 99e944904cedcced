package models

// DayStatus classifies a date's completion. StatusNoData means no checkin
// rows exist for the date, which is distinct from every habit marked
// not-done.
type DayStatus string

const (
	StatusNoData   DayStatus = "no_data"
	StatusAllDone  DayStatus = "all"
	StatusPartial  DayStatus = "partial"
	StatusNoneDone DayStatus = "none"
)
