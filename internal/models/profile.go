package models

import (
	"fmt"
	"strings"
	"time"
)

// Profile is the dashboard user's own editable profile
type Profile struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Avatar     string `json:"avatar"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	JoinDate   string `json:"joinDate"`
	Bio        string `json:"bio"`
}

// ProfileUpdate carries a partial profile edit; nil fields are left untouched
type ProfileUpdate struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
	JoinDate   *string `json:"joinDate,omitempty"`
	Bio        *string `json:"bio,omitempty"`
}

// Apply merges the non-nil fields of the update into the profile
func (u *ProfileUpdate) Apply(p *Profile) {
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Role != nil {
		p.Role = *u.Role
	}
	if u.Avatar != nil {
		p.Avatar = *u.Avatar
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Department != nil {
		p.Department = *u.Department
	}
	if u.JoinDate != nil {
		p.JoinDate = *u.JoinDate
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
}

// DefaultProfile returns the profile a fresh dashboard starts with
func DefaultProfile() Profile {
	return Profile{
		FirstName:  "User",
		LastName:   "Profile",
		Email:      "user@company.com",
		Role:       "Employee",
		Avatar:     "/placeholder.svg",
		Phone:      "+1 (555) 123-4567",
		Department: "General",
		JoinDate:   time.Now().Format("January 2006"),
		Bio:        "Welcome to the HR Dashboard platform. Please update your profile information.",
	}
}

// ProfileForUser builds a profile for a freshly logged-in user. Department is
// inferred from the role name.
func ProfileForUser(firstName, lastName, email, role string) Profile {
	department := "General"
	if strings.Contains(role, "HR") {
		department = "Human Resources"
	} else if strings.Contains(role, "Manager") {
		department = "Management"
	}

	initials := ""
	if firstName != "" {
		initials += firstName[:1]
	}
	if lastName != "" {
		initials += lastName[:1]
	}

	return Profile{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Role:       role,
		Avatar:     fmt.Sprintf("/placeholder.svg?height=100&width=100&text=%s", initials),
		Phone:      "+1 (555) 123-4567",
		Department: department,
		JoinDate:   time.Now().Format("January 2006"),
		Bio:        fmt.Sprintf("%s with experience in team management and organizational development. Recently joined the HR Dashboard platform.", role),
	}
}
