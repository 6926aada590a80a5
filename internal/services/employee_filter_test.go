package services

import (
	"strings"
	"testing"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func filterFixture() []models.Employee {
	return []models.Employee{
		{ID: 1, FirstName: "John", LastName: "Smith", Email: "john.smith@example.com", Department: "Engineering", PerformanceRating: 4.5},
		{ID: 2, FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com", Department: "Marketing", PerformanceRating: 3},
		{ID: 3, FirstName: "Emily", LastName: "Johnson", Email: "emily.johnson@example.com", Department: "Engineering", PerformanceRating: 5},
		{ID: 4, FirstName: "Michael", LastName: "Brown", Email: "michael.brown@example.com", Department: "Sales", PerformanceRating: 2},
		{ID: 5, FirstName: "Sarah", LastName: "Marks", Email: "sarah.marks@example.com", Department: "Finance", PerformanceRating: 4},
	}
}

func TestFilterIdentity(t *testing.T) {
	employees := filterFixture()

	filtered := FilterEmployees(employees, FilterOptions{})
	assert.Equal(t, employees, filtered, "no criteria keeps everything")
}

func TestFilterBySearch(t *testing.T) {
	employees := filterFixture()

	testCases := []struct {
		name        string
		search      string
		expectedIDs []int
	}{
		{name: "First name", search: "john", expectedIDs: []int{1, 3}}, // matches Johnson's email/last name too
		{name: "Last name", search: "doe", expectedIDs: []int{2}},
		{name: "Email", search: "michael.brown@", expectedIDs: []int{4}},
		{name: "Department", search: "engineering", expectedIDs: []int{1, 3}},
		{name: "Case insensitive", search: "SARAH", expectedIDs: []int{5}},
		{name: "No match", search: "zzz", expectedIDs: []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := FilterEmployees(employees, FilterOptions{Search: tc.search})

			ids := make([]int, 0, len(filtered))
			for _, employee := range filtered {
				ids = append(ids, employee.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)

			// Every survivor actually matches on one of the four fields
			for _, employee := range filtered {
				search := strings.ToLower(tc.search)
				matches := strings.Contains(strings.ToLower(employee.FirstName), search) ||
					strings.Contains(strings.ToLower(employee.LastName), search) ||
					strings.Contains(strings.ToLower(employee.Email), search) ||
					strings.Contains(strings.ToLower(employee.Department), search)
				assert.True(t, matches)
			}
		})
	}
}

func TestFilterByDepartments(t *testing.T) {
	filtered := FilterEmployees(filterFixture(), FilterOptions{Departments: []string{"Engineering", "Sales"}})

	assert.Len(t, filtered, 3)
	for _, employee := range filtered {
		assert.Contains(t, []string{"Engineering", "Sales"}, employee.Department)
	}
}

func TestFilterByRatingsUsesFloor(t *testing.T) {
	// 4.5 floors to 4, so both rating-4 employees survive
	filtered := FilterEmployees(filterFixture(), FilterOptions{Ratings: []int{4}})

	assert.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 5, filtered[1].ID)
}

func TestFilterComposition(t *testing.T) {
	employees := filterFixture()

	options := FilterOptions{
		Search:      "example.com",
		Departments: []string{"Engineering"},
		Ratings:     []int{4, 5},
	}

	filtered := FilterEmployees(employees, options)
	assert.Len(t, filtered, 2, "categories compose conjunctively")

	t.Run("Idempotent", func(t *testing.T) {
		assert.Equal(t, filtered, FilterEmployees(filtered, options))
	})

	t.Run("Input not mutated", func(t *testing.T) {
		assert.Equal(t, filterFixture(), employees)
	})
}
