package get_court_availability

// Request запрос занятости корта на дату
type Request struct {
	CourtID int64
	Date    string // YYYY-MM-DD
}

// Response почасовая занятость корта
type Response struct {
	CourtID       int64    `json:"court_id"`
	Date          string   `json:"date"`
	OccupiedHours []string `json:"occupied_hours"`
	FreeHours     []string `json:"free_hours"`
}
