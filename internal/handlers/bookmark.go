package handlers

import (
	"net/http"
	"strconv"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/internal/services"
	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkService *services.BookmarkService
	employeeService *services.EmployeeService
}

func NewBookmarkHandler(bookmarkService *services.BookmarkService, employeeService *services.EmployeeService) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkService: bookmarkService,
		employeeService: employeeService,
	}
}

// List returns the bookmarked employees, resolved against the current roster
func (h *BookmarkHandler) List(c *gin.Context) {
	h.employeeService.FetchEmployees(c.Request.Context())

	ids := h.bookmarkService.Bookmarks()
	byID := make(map[int]models.Employee)
	for _, employee := range h.employeeService.Employees() {
		byID[employee.ID] = employee
	}

	employees := make([]models.Employee, 0, len(ids))
	for _, id := range ids {
		if employee, ok := byID[id]; ok {
			employees = append(employees, employee)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"bookmarks": ids,
		"employees": employees,
	})
}

// Add bookmarks an employee
func (h *BookmarkHandler) Add(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}

	h.bookmarkService.Add(id)
	c.JSON(http.StatusOK, gin.H{"bookmarks": h.bookmarkService.Bookmarks()})
}

// Remove drops one bookmark
func (h *BookmarkHandler) Remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}

	h.bookmarkService.Remove(id)
	c.JSON(http.StatusOK, gin.H{"bookmarks": h.bookmarkService.Bookmarks()})
}

// Clear removes all bookmarks
func (h *BookmarkHandler) Clear(c *gin.Context) {
	h.bookmarkService.Clear()
	c.JSON(http.StatusOK, gin.H{"bookmarks": []int{}})
}
