package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alimgiray/hrboard/internal/models"
)

// DepartmentStats aggregates one department's roster
type DepartmentStats struct {
	Department    string  `json:"department"`
	Headcount     int     `json:"headcount"`
	AverageRating float64 `json:"averageRating"`
}

// RatingBucket counts employees whose floored rating equals Rating
type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// BookmarkTrend is one month of synthetic bookmark activity
type BookmarkTrend struct {
	Date            string `json:"date"`
	Count           int    `json:"count"`
	ActiveEmployees int    `json:"activeEmployees"`
}

// AnalyticsService computes the aggregates behind the analytics page. All
// methods are pure over their inputs.
type AnalyticsService struct {
	seed int
}

func NewAnalyticsService(seed int) *AnalyticsService {
	return &AnalyticsService{
		seed: seed,
	}
}

// AverageRating returns the mean performance rating, 0 for an empty roster
func (s *AnalyticsService) AverageRating(employees []models.Employee) float64 {
	if len(employees) == 0 {
		return 0
	}

	sum := 0.0
	for _, employee := range employees {
		sum += employee.PerformanceRating
	}
	return sum / float64(len(employees))
}

// TopPerformers returns the limit highest-rated employees
func (s *AnalyticsService) TopPerformers(employees []models.Employee, limit int) []models.Employee {
	sorted := make([]models.Employee, len(employees))
	copy(sorted, employees)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PerformanceRating > sorted[j].PerformanceRating
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}

// DepartmentBreakdown aggregates headcount and average rating per department,
// in the fixed department order. Departments with no employees are omitted.
func (s *AnalyticsService) DepartmentBreakdown(employees []models.Employee) []DepartmentStats {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, employee := range employees {
		sums[employee.Department] += employee.PerformanceRating
		counts[employee.Department]++
	}

	stats := make([]DepartmentStats, 0, len(counts))
	for _, department := range models.Departments {
		if counts[department] == 0 {
			continue
		}
		stats = append(stats, DepartmentStats{
			Department:    department,
			Headcount:     counts[department],
			AverageRating: sums[department] / float64(counts[department]),
		})
	}

	return stats
}

// RatingDistribution buckets employees by floored rating, 1 through 5
func (s *AnalyticsService) RatingDistribution(employees []models.Employee) []RatingBucket {
	counts := make(map[int]int)
	for _, employee := range employees {
		counts[int(math.Floor(employee.PerformanceRating))]++
	}

	buckets := make([]RatingBucket, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		buckets = append(buckets, RatingBucket{
			Rating: rating,
			Count:  counts[rating],
		})
	}

	return buckets
}

// BookmarkTrends synthesizes a year of monthly bookmark activity with a mild
// upward trend. Seeded, so the series is stable across calls.
func (s *AnalyticsService) BookmarkTrends() []BookmarkTrend {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	year := time.Now().Year()

	trends := make([]BookmarkTrend, 0, len(months))
	for i, month := range months {
		baseCount := 5 + i/2
		variation := int(seededRandom(float64(s.seed+i))*3) - 1

		trends = append(trends, BookmarkTrend{
			Date:            fmt.Sprintf("%s %d", month, year),
			Count:           baseCount + variation,
			ActiveEmployees: 15 + i + int(seededRandom(float64(s.seed+i+100))*5) - 2,
		})
	}

	return trends
}
