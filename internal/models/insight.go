package models

// PerformancePeriod is one quarter of an employee's rating history
type PerformancePeriod struct {
	Period string  `json:"period"`
	Rating float64 `json:"rating"`
}

// Project is a derived project assignment shown on the employee detail page
type Project struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Status        string   `json:"status"`
	Progress      int      `json:"progress"`
	Role          string   `json:"role"`
	Deadline      string   `json:"deadline"`
	CompletedDate string   `json:"completedDate,omitempty"`
	Team          []string `json:"team"`
}

// Feedback is a derived feedback entry on the employee detail page
type Feedback struct {
	ID           string `json:"id"`
	Author       string `json:"author"`
	AuthorAvatar string `json:"authorAvatar"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	Content      string `json:"content"`
}

// EmployeeInsights bundles the derived detail-page content for one employee
type EmployeeInsights struct {
	PerformanceHistory []PerformancePeriod `json:"performanceHistory"`
	Projects           []Project           `json:"projects"`
	Feedback           []Feedback          `json:"feedback"`
}
