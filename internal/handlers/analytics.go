package handlers

import (
	"net/http"
	"strconv"

	"github.com/alimgiray/hrboard/internal/services"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	employeeService  *services.EmployeeService
	analyticsService *services.AnalyticsService
	bookmarkService  *services.BookmarkService
}

func NewAnalyticsHandler(employeeService *services.EmployeeService, analyticsService *services.AnalyticsService, bookmarkService *services.BookmarkService) *AnalyticsHandler {
	return &AnalyticsHandler{
		employeeService:  employeeService,
		analyticsService: analyticsService,
		bookmarkService:  bookmarkService,
	}
}

// Summary returns the headline numbers for the dashboard stats row
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	h.employeeService.FetchEmployees(c.Request.Context())
	employees := h.employeeService.Employees()

	c.JSON(http.StatusOK, gin.H{
		"totalEmployees": len(employees),
		"averageRating":  h.analyticsService.AverageRating(employees),
		"bookmarked":     len(h.bookmarkService.Bookmarks()),
		"departments":    len(h.analyticsService.DepartmentBreakdown(employees)),
	})
}

// Departments returns per-department headcounts and average ratings
func (h *AnalyticsHandler) Departments(c *gin.Context) {
	h.employeeService.FetchEmployees(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"departments": h.analyticsService.DepartmentBreakdown(h.employeeService.Employees()),
	})
}

// Ratings returns the floored-rating distribution
func (h *AnalyticsHandler) Ratings(c *gin.Context) {
	h.employeeService.FetchEmployees(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"distribution": h.analyticsService.RatingDistribution(h.employeeService.Employees()),
	})
}

// TopPerformers returns the highest-rated employees
func (h *AnalyticsHandler) TopPerformers(c *gin.Context) {
	h.employeeService.FetchEmployees(c.Request.Context())

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	c.JSON(http.StatusOK, gin.H{
		"topPerformers": h.analyticsService.TopPerformers(h.employeeService.Employees(), limit),
	})
}

// BookmarkTrends returns the synthetic monthly bookmark series
func (h *AnalyticsHandler) BookmarkTrends(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"trends": h.analyticsService.BookmarkTrends(),
	})
}
