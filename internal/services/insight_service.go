package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/alimgiray/hrboard/internal/models"
)

// InsightService derives the employee detail-page content (performance
// history, projects, feedback) from the employee id alone. Everything here
// is deterministic: the same employee always gets the same insights.
type InsightService struct{}

func NewInsightService() *InsightService {
	return &InsightService{}
}

var projectNames = []string{
	"Website Redesign",
	"Mobile App Development",
	"Data Migration",
	"Cloud Infrastructure",
	"Marketing Campaign",
	"Product Launch",
	"Customer Portal",
	"Internal Dashboard",
	"API Integration",
	"Security Audit",
}

var projectRoles = []string{"Project Lead", "Developer", "Designer", "Analyst", "Consultant", "QA Tester"}

var projectTeamMembers = []string{
	"John Smith", "Emily Johnson", "Michael Brown", "Sarah Davis", "David Wilson",
	"Jessica Martinez", "Robert Taylor", "Jennifer Anderson", "William Thomas", "Lisa Jackson",
}

var feedbackAuthors = []string{
	"Jane Smith (Manager)",
	"Robert Johnson (Team Lead)",
	"Emily Davis (HR)",
	"Michael Wilson (Director)",
	"Sarah Brown (Colleague)",
}

var positiveFeedback = []string{
	"Consistently delivers high-quality work ahead of deadlines. A valuable team member who goes above and beyond.",
	"Excellent communication skills and team collaboration. Always willing to help others and share knowledge.",
	"Demonstrates strong problem-solving abilities and technical expertise. Quickly adapts to new challenges.",
	"Shows great initiative and leadership potential. Proactively identifies and addresses issues before they escalate.",
	"Exceptional attention to detail and commitment to quality. Sets a high standard for the team.",
}

var constructiveFeedback = []string{
	"Could improve time management skills to better prioritize tasks. Sometimes takes on too many responsibilities at once.",
	"Would benefit from more detailed documentation of work processes to help with knowledge transfer.",
	"Should work on providing more regular updates during project implementation to keep stakeholders informed.",
	"Could enhance presentation skills for more effective communication with senior management and clients.",
	"Needs to delegate more effectively to avoid bottlenecks in project workflows.",
}

var recognitionFeedback = []string{
	"Recognized for outstanding contribution to the recent product launch. The project's success was largely due to their efforts.",
	"Awarded Employee of the Month for exceptional performance and dedication to team goals.",
	"Commended by the client for excellent service delivery and professional attitude.",
	"Received special recognition for innovative solution that saved the company significant resources.",
	"Acknowledged by leadership for mentoring new team members and fostering a collaborative environment.",
}

// Insights bundles all derived content for one employee
func (s *InsightService) Insights(employeeID int) models.EmployeeInsights {
	return models.EmployeeInsights{
		PerformanceHistory: s.PerformanceHistory(employeeID),
		Projects:           s.Projects(employeeID),
		Feedback:           s.Feedback(employeeID),
	}
}

// PerformanceHistory derives four quarters of ratings for an employee
func (s *InsightService) PerformanceHistory(employeeID int) []models.PerformancePeriod {
	seed := employeeID % 10
	base := float64(3 + seed%3)

	return []models.PerformancePeriod{
		{Period: "Q1 2023", Rating: clampRating(base - 1)},
		{Period: "Q2 2023", Rating: clampRating(base - 0.5)},
		{Period: "Q3 2023", Rating: clampRating(base)},
		{Period: "Q4 2023", Rating: clampRating(base + 0.5)},
	}
}

// Projects derives 2-5 project assignments for an employee
func (s *InsightService) Projects(employeeID int) []models.Project {
	seed := employeeID % 10
	numProjects := 2 + seed%4

	deadlineMonths := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	completedMonths := []string{"Oct", "Nov", "Dec"}

	projects := make([]models.Project, 0, numProjects)
	for i := 0; i < numProjects; i++ {
		// The last two projects are completed
		isCompleted := i >= numProjects-2

		name := projectNames[(seed+i)%len(projectNames)]

		status := "In Progress"
		progress := 25 + (seed+i*15)%50
		deadline := fmt.Sprintf("Due %s 2024", deadlineMonths[(seed+i)%len(deadlineMonths)])
		completedDate := ""
		if isCompleted {
			status = "Completed"
			progress = 100
			deadline = fmt.Sprintf("Completed %s 2023", deadlineMonths[(seed+i)%len(deadlineMonths)])
			completedDate = fmt.Sprintf("%s 2023", completedMonths[(seed+i)%len(completedMonths)])
		}

		team := make([]string, 0, 2+i%3)
		for j := 0; j < 2+i%3; j++ {
			team = append(team, projectTeamMembers[(seed+i+j)%len(projectTeamMembers)])
		}

		projects = append(projects, models.Project{
			ID:            fmt.Sprintf("%d-%d", employeeID, i),
			Name:          name,
			Description:   fmt.Sprintf("A project to %s for the organization.", strings.ToLower(name)),
			Status:        status,
			Progress:      progress,
			Role:          projectRoles[(seed+i)%len(projectRoles)],
			Deadline:      deadline,
			CompletedDate: completedDate,
			Team:          team,
		})
	}

	return projects
}

// Feedback derives 1-4 feedback entries for an employee
func (s *InsightService) Feedback(employeeID int) []models.Feedback {
	seed := employeeID % 10
	numFeedback := 1 + seed%4

	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	types := []string{"positive", "constructive", "recognition"}

	feedback := make([]models.Feedback, 0, numFeedback)
	for i := 0; i < numFeedback; i++ {
		feedbackType := types[(seed+i)%3]

		var content string
		switch feedbackType {
		case "positive":
			content = positiveFeedback[(seed+i)%len(positiveFeedback)]
		case "constructive":
			content = constructiveFeedback[(seed+i)%len(constructiveFeedback)]
		default:
			content = recognitionFeedback[(seed+i)%len(recognitionFeedback)]
		}

		feedback = append(feedback, models.Feedback{
			ID:           fmt.Sprintf("%d-%d", employeeID, i),
			Author:       feedbackAuthors[(seed+i)%len(feedbackAuthors)],
			AuthorAvatar: "/placeholder.svg?height=40&width=40",
			Date:         fmt.Sprintf("%s %d, 2023", months[(seed+i)%12], i+1),
			Type:         feedbackType,
			Content:      content,
		})
	}

	return feedback
}

func clampRating(rating float64) float64 {
	return math.Min(5, math.Max(1, rating))
}
