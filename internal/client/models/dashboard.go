package models

// LocationCount is one bucket of the incidents-by-location histogram.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// StatusBucket is one slice of the security status chart.
type StatusBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Snapshot is a derived, point-in-time aggregation of the backend
// collections. It is recomputed from scratch on every fetch cycle and
// replaced atomically; it is never merged incrementally.
type Snapshot struct {
	VisitorCount int
	Locations    []LocationCount
	Statuses     []StatusBucket
}

// statusBuckets maps incident statuses to chart labels. The label names
// intentionally do not match the statuses they count (Completed is shown
// as "Approved", In Progress as "Pending", Reported as "Flagged"); this
// mirrors the dashboard's established naming and must not be "fixed"
// here without a product decision.
var statusBuckets = []struct {
	label  string
	status string
	color  string
}{
	{"Approved", IncidentCompleted, "#10b981"},
	{"Pending", IncidentInProgress, "#f59e0b"},
	{"Flagged", IncidentReported, "#ef4444"},
}

// DefaultLocationCounts is shown instead of an empty location chart when
// the backend has no per-location aggregates yet.
var DefaultLocationCounts = []LocationCount{
	{Location: "Main", Count: 42},
	{Location: "Gym", Count: 18},
	{Location: "Library", Count: 25},
	{Location: "Cafeteria", Count: 31},
	{Location: "Auditorium", Count: 12},
}

// BuildSnapshot derives the dashboard summary views from the latest raw
// collections:
//
//   - VisitorCount: volunteers currently checked in.
//   - Statuses: incident counts bucketed per statusBuckets.
//   - Locations: the backend aggregate, or DefaultLocationCounts when empty.
func BuildSnapshot(volunteers []Volunteer, incidents []Incident, locations []LocationCount) *Snapshot {
	checkedIn := 0
	for _, v := range volunteers {
		if v.IsCheckedIn {
			checkedIn++
		}
	}

	statuses := make([]StatusBucket, 0, len(statusBuckets))
	for _, b := range statusBuckets {
		n := 0
		for _, inc := range incidents {
			if inc.Status == b.status {
				n++
			}
		}
		statuses = append(statuses, StatusBucket{Name: b.label, Value: n, Color: b.color})
	}

	locs := locations
	if len(locs) == 0 {
		locs = make([]LocationCount, len(DefaultLocationCounts))
		copy(locs, DefaultLocationCounts)
	}

	return &Snapshot{
		VisitorCount: checkedIn,
		Locations:    locs,
		Statuses:     statuses,
	}
}
