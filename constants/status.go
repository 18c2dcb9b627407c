package constants

// DocumentStatus is the canonical lifecycle status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	StatusReceived   DocumentStatus = "RECEIVED"   // created by ingestion, waiting for a worker
	StatusProcessing DocumentStatus = "PROCESSING" // picked up by a worker
	StatusProcessed  DocumentStatus = "PROCESSED"  // terminal success, file promoted to permanent storage
	StatusFailed     DocumentStatus = "FAILED"     // terminal failure
)

// Statuses holds the allowed values for the status column.
var Statuses = []string{
	string(StatusReceived),
	string(StatusProcessing),
	string(StatusProcessed),
	string(StatusFailed),
}

// IsStatus reports whether s is a member of the closed status set.
func IsStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted from s.
func (s DocumentStatus) IsTerminal() bool {
	return s == StatusProcessed || s == StatusFailed
}
