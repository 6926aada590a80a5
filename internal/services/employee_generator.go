package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/alimgiray/hrboard/internal/models"
)

// Name pools for generated employees
var generatedFirstNames = []string{
	"John", "Jane", "Michael", "Emily", "David", "Sarah", "Robert", "Lisa",
	"William", "Emma", "James", "Olivia", "Daniel", "Sophia", "Matthew",
	"Ava", "Christopher", "Mia", "Andrew", "Isabella",
}

var generatedLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis",
	"Garcia", "Rodriguez", "Wilson", "Martinez", "Anderson", "Taylor",
	"Thomas", "Hernandez", "Moore", "Martin", "Jackson", "Thompson", "White",
}

// seededRandom derives a value in [0, 1) from a seed. Not random at all:
// the same seed always yields the same value, which is what keeps generated
// departments and ratings stable across reloads.
func seededRandom(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}

// DeriveAssignment computes the department and performance rating for a raw
// directory record. Keyed by base seed + source id + position index so the
// same payload always maps to the same assignments.
func DeriveAssignment(seed, sourceID, index int) (string, float64) {
	userSeed := float64(seed + sourceID + index)

	departmentIndex := int(seededRandom(userSeed) * float64(len(models.Departments)))
	department := models.Departments[departmentIndex]

	rating := math.Floor(seededRandom(userSeed+1000)*5) + 1

	return department, rating
}

// GenerateEmployees synthesizes a fully deterministic employee collection.
// Used as the fallback when the remote directory is unreachable.
func GenerateEmployees(seed, count int) []models.Employee {
	employees := make([]models.Employee, 0, count)

	for i := 0; i < count; i++ {
		id := i + 1
		userSeed := float64(seed + id)

		firstName := generatedFirstNames[int(seededRandom(userSeed)*float64(len(generatedFirstNames)))]
		lastName := generatedLastNames[int(seededRandom(userSeed+100)*float64(len(generatedLastNames)))]
		email := fmt.Sprintf("%s.%s@example.com", strings.ToLower(firstName), strings.ToLower(lastName))
		age := int(seededRandom(userSeed+200)*30) + 25

		departmentIndex := int(seededRandom(userSeed+300) * float64(len(models.Departments)))
		department := models.Departments[departmentIndex]

		rating := math.Floor(seededRandom(userSeed+400)*5) + 1

		gender := "female"
		if seededRandom(userSeed+500) > 0.5 {
			gender = "male"
		}

		phone := fmt.Sprintf("+1 (555) %d-%d",
			int(100+seededRandom(userSeed+600)*900),
			int(1000+seededRandom(userSeed+700)*9000))

		employees = append(employees, models.Employee{
			ID:        id,
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			Age:       age,
			Gender:    gender,
			Image:     fmt.Sprintf("/placeholder.svg?height=100&width=100&text=%s%s", firstName[:1], lastName[:1]),
			Address: &models.Address{
				City:  "New York",
				State: "NY",
			},
			Phone:             phone,
			Department:        department,
			PerformanceRating: rating,
		})
	}

	return employees
}
