package models

// Incident status values as reported by the backend.
const (
	IncidentReported   = "Reported"
	IncidentInProgress = "In Progress"
	IncidentCompleted  = "Completed"
)

// Incident is read-only from the client's perspective.
type Incident struct {
	ID         ID     `json:"id"`
	Type       string `json:"type"`
	Location   string `json:"location"`
	Timestamp  string `json:"timestamp"`
	Status     string `json:"status"`
	ReportedBy string `json:"reportedBy,omitempty"`
}
