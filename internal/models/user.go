package models

// User is an authenticated dashboard account as exposed to the client
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Credential is a stored account, password included. Credentials live only in
// the mock user corpus and the persisted registration slot; they are never
// returned to the client.
type Credential struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// User strips the password from a credential
func (c *Credential) User() User {
	return User{
		ID:    c.ID,
		Email: c.Email,
		Name:  c.Name,
		Role:  c.Role,
	}
}
