package models

// Departments is the fixed set a dashboard employee can belong to.
// Derived department assignment indexes into this slice, so order matters.
var Departments = []string{
	"Engineering",
	"Marketing",
	"Sales",
	"HR",
	"Finance",
	"Operations",
	"Design",
	"Product",
}

// Address is presentational metadata on an employee
type Address struct {
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Employee is the canonical dashboard record. ID is the sole identity key
// and must be unique within a collection.
type Employee struct {
	ID                int      `json:"id"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	Age               int      `json:"age"`
	Gender            string   `json:"gender,omitempty"`
	Image             string   `json:"image"`
	Address           *Address `json:"address,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Department        string   `json:"department"`
	PerformanceRating float64  `json:"performanceRating"`
}

// FullName returns the employee's display name
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeUpdate carries a partial edit for UpdateEmployee. Nil fields are
// left untouched on the target record.
type EmployeeUpdate struct {
	FirstName         *string  `json:"firstName,omitempty"`
	LastName          *string  `json:"lastName,omitempty"`
	Email             *string  `json:"email,omitempty"`
	Age               *int     `json:"age,omitempty"`
	Gender            *string  `json:"gender,omitempty"`
	Image             *string  `json:"image,omitempty"`
	Address           *Address `json:"address,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	Department        *string  `json:"department,omitempty"`
	PerformanceRating *float64 `json:"performanceRating,omitempty"`
}

// Apply merges the non-nil fields of the update into the employee
func (u *EmployeeUpdate) Apply(e *Employee) {
	if u.FirstName != nil {
		e.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		e.LastName = *u.LastName
	}
	if u.Email != nil {
		e.Email = *u.Email
	}
	if u.Age != nil {
		e.Age = *u.Age
	}
	if u.Gender != nil {
		e.Gender = *u.Gender
	}
	if u.Image != nil {
		e.Image = *u.Image
	}
	if u.Address != nil {
		e.Address = u.Address
	}
	if u.Phone != nil {
		e.Phone = *u.Phone
	}
	if u.Department != nil {
		e.Department = *u.Department
	}
	if u.PerformanceRating != nil {
		e.PerformanceRating = *u.PerformanceRating
	}
}
