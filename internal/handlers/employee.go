package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/internal/services"
	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService     *services.EmployeeService
	insightService      *services.InsightService
	exportService       *services.ExportService
	notificationService *services.NotificationService
}

func NewEmployeeHandler(employeeService *services.EmployeeService, insightService *services.InsightService, exportService *services.ExportService, notificationService *services.NotificationService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService:     employeeService,
		insightService:      insightService,
		exportService:       exportService,
		notificationService: notificationService,
	}
}

type createEmployeeRequest struct {
	FirstName         string  `json:"firstName" binding:"required"`
	LastName          string  `json:"lastName" binding:"required"`
	Email             string  `json:"email" binding:"required"`
	Age               int     `json:"age"`
	Department        string  `json:"department" binding:"required"`
	PerformanceRating float64 `json:"performanceRating"`
	Phone             string  `json:"phone"`
}

// List returns the filtered, paginated employee collection
func (h *EmployeeHandler) List(c *gin.Context) {
	h.employeeService.FetchEmployees(c.Request.Context())

	options := parseFilterOptions(c)
	filtered := services.FilterEmployees(h.employeeService.Employees(), options)

	page, pageSize := parsePagination(c)
	total := len(filtered)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"employees": filtered[start:end],
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"degraded":  h.employeeService.Degraded(),
		"error":     h.employeeService.Error(),
	})
}

// Get returns one employee with its derived insights
func (h *EmployeeHandler) Get(c *gin.Context) {
	h.employeeService.FetchEmployees(c.Request.Context())

	id := c.Param("id")
	employee, err := h.employeeService.Employee(id)
	if err != nil {
		var notFound *services.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employee": employee,
		"insights": h.insightService.Insights(employee.ID),
	})
}

// Create adds a locally created employee to the store
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstName, lastName, email and department are required"})
		return
	}

	if !validDepartment(req.Department) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown department: %s", req.Department)})
		return
	}

	rating := req.PerformanceRating
	if rating < 1 || rating > 5 {
		rating = 3
	}

	employee := h.employeeService.AddEmployee(models.Employee{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Age:               req.Age,
		Image:             fmt.Sprintf("/placeholder.svg?height=100&width=100&text=%s%s", req.FirstName[:1], req.LastName[:1]),
		Phone:             req.Phone,
		Department:        req.Department,
		PerformanceRating: rating,
	})

	h.notificationService.Add(
		"New Employee Added",
		fmt.Sprintf("%s joined %s", employee.FullName(), employee.Department),
		models.NotificationSuccess,
	)

	c.JSON(http.StatusCreated, gin.H{"employee": employee})
}

// Update merges a partial edit into one employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}

	var update models.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update payload"})
		return
	}

	if !h.employeeService.UpdateEmployee(id, update) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("employee with ID %d not found", id)})
		return
	}

	employee, _ := h.employeeService.Employee(strconv.Itoa(id))
	c.JSON(http.StatusOK, gin.H{"employee": employee})
}

// Refresh drops the cached collection and fetches a fresh one
func (h *EmployeeHandler) Refresh(c *gin.Context) {
	h.employeeService.Refresh(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"employees": h.employeeService.Employees(),
		"degraded":  h.employeeService.Degraded(),
		"error":     h.employeeService.Error(),
	})
}

// Export streams the filtered roster as an XLSX workbook
func (h *EmployeeHandler) Export(c *gin.Context) {
	h.employeeService.FetchEmployees(c.Request.Context())

	options := parseFilterOptions(c)
	filtered := services.FilterEmployees(h.employeeService.Employees(), options)

	data, err := h.exportService.ExportEmployees(filtered)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export employees"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="employees.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// parseFilterOptions reads the filter query parameters
func parseFilterOptions(c *gin.Context) services.FilterOptions {
	options := services.FilterOptions{
		Search: c.Query("search"),
	}

	if raw := c.Query("departments"); raw != "" {
		options.Departments = strings.Split(raw, ",")
	}

	if raw := c.Query("ratings"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if rating, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				options.Ratings = append(options.Ratings, rating)
			}
		}
	}

	return options
}

// parsePagination reads page/page_size with sane defaults
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "12"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 12
	}

	return page, pageSize
}

func validDepartment(department string) bool {
	for _, d := range models.Departments {
		if d == department {
			return true
		}
	}
	return false
}
