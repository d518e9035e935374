package dto

// ViewQuery is bound from the query string of GET /api/tasks.
type ViewQuery struct {
	Filter string `form:"filter"`
	Query  string `form:"q"`
	Sort   string `form:"sort"`
}

// SearchQuery is bound from the query string of GET /api/tasks/search.
type SearchQuery struct {
	Query     string `form:"q"`
	Priority  string `form:"priority"`
	Status    string `form:"status"`
	DateRange string `form:"range"`
}

type SummaryResponse struct {
	Total      int             `json:"total"`
	Completed  int             `json:"completed"`
	Active     int             `json:"active"`
	InProgress int             `json:"in_progress"`
	ByType     map[string]int  `json:"by_type"`
	Epics      []EpicProgress  `json:"epics"`
	Workload   map[string]int  `json:"workload"`
	Activity   []DailyActivity `json:"activity"`
}

type EpicProgress struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type DailyActivity struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type CalendarDay struct {
	Day   string     `json:"day"`
	Tasks []TaskItem `json:"tasks"`
}

type TimelineEntry struct {
	Task  TaskItem `json:"task"`
	Start string   `json:"start"`
	End   string   `json:"end"`
}
