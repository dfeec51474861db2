package dto

type DashboardResponse struct {
	OpenTasks      []TaskResponse  `json:"openTasks"`
	RecentNotes    []NoteResponse  `json:"recentNotes"`
	UpcomingEvents []EventResponse `json:"upcomingEvents"`
}
