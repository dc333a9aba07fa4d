package models

// User represents a user profile record in the store
type User struct {
	ID        int64  `json:"id"`         // Assigned by the store, monotonically increasing
	Username  string `json:"username"`   // Unique username
	Email     string `json:"email"`      // Unique email, never exposed in responses
	FirstName string `json:"first_name"` // First name
	LastName  string `json:"last_name"`  // Last name
	Age       *int   `json:"age"`        // Optional age
	CreatedAt string `json:"created_at"` // RFC3339 UTC timestamp, set once at creation
}

// NewUser carries the validated fields for creating a user.
// ID and CreatedAt are assigned by the service/store.
type NewUser struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Age       *int
}

// UserPatch carries a partial update. Nil pointer fields are left
// untouched. Age is tri-state: AgeSet reports whether the age key was
// present in the request; a present-but-nil Age clears the field.
type UserPatch struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Age       *int
	AgeSet    bool
}

// Clone returns a deep copy of the user so callers never alias store memory.
func (u *User) Clone() *User {
	c := *u
	if u.Age != nil {
		age := *u.Age
		c.Age = &age
	}
	return &c
}

func intPtr(v int) *int { return &v }

// SeedUsers returns the three fixture records loaded at process start.
func SeedUsers() []*User {
	return []*User{
		{
			ID:        1,
			Username:  "john_doe",
			Email:     "john.doe@example.com",
			FirstName: "John",
			LastName:  "Doe",
			Age:       intPtr(30),
			CreatedAt: "2023-01-15T10:30:00Z",
		},
		{
			ID:        2,
			Username:  "jane_smith",
			Email:     "jane.smith@example.com",
			FirstName: "Jane",
			LastName:  "Smith",
			Age:       intPtr(28),
			CreatedAt: "2023-02-20T14:45:00Z",
		},
		{
			ID:        3,
			Username:  "bob_johnson",
			Email:     "bob.johnson@example.com",
			FirstName: "Bob",
			LastName:  "Johnson",
			Age:       intPtr(35),
			CreatedAt: "2023-03-10T09:15:00Z",
		},
	}
}
