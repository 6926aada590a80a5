package services

import (
	"math"
	"strings"

	"github.com/alimgiray/hrboard/internal/models"
)

// FilterOptions narrows an employee collection. Categories compose
// conjunctively; values within a category compose disjunctively. Zero
// options keep everything.
type FilterOptions struct {
	Search      string
	Departments []string
	Ratings     []int
}

// FilterEmployees returns the employees matching the options. Pure: the
// input collection is never mutated.
func FilterEmployees(employees []models.Employee, options FilterOptions) []models.Employee {
	filtered := make([]models.Employee, 0, len(employees))

	search := strings.ToLower(options.Search)

	for _, employee := range employees {
		if search != "" && !matchesSearch(&employee, search) {
			continue
		}
		if len(options.Departments) > 0 && !containsString(options.Departments, employee.Department) {
			continue
		}
		if len(options.Ratings) > 0 && !containsInt(options.Ratings, int(math.Floor(employee.PerformanceRating))) {
			continue
		}

		filtered = append(filtered, employee)
	}

	return filtered
}

// matchesSearch checks the query against name, email and department
func matchesSearch(employee *models.Employee, search string) bool {
	return strings.Contains(strings.ToLower(employee.FirstName), search) ||
		strings.Contains(strings.ToLower(employee.LastName), search) ||
		strings.Contains(strings.ToLower(employee.Email), search) ||
		strings.Contains(strings.ToLower(employee.Department), search)
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
