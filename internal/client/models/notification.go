package models

// Notification is an admin dashboard notification entry.
type Notification struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// DashboardStats is the backend's precomputed stats block for the admin
// dashboard header.
type DashboardStats struct {
	TotalVisitors       int    `json:"totalVisitors"`
	CompletedScreenings int    `json:"completedScreenings"`
	ActiveIncidents     int    `json:"activeIncidents"`
	SystemHealth        string `json:"systemHealth"`
	ActiveSessions      int    `json:"activeSessions"`
	PendingApprovals    int    `json:"pendingApprovals"`
	SystemAlerts        int    `json:"systemAlerts"`
}
