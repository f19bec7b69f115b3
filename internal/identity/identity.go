package identity

// User is the authenticated identity for the active session. It is
// immutable for the session duration: logout clears it, login replaces
// it wholesale.
type User struct {
	Name       string            `json:"name"`
	Role       Role              `json:"role"`
	College    string            `json:"college_name"`
	Department string            `json:"department"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Attribute returns a role-specific attribute such as "designation" for
// faculty or "roll_no" for students.
func (u *User) Attribute(key string) string {
	if u == nil || u.Attributes == nil {
		return ""
	}
	return u.Attributes[key]
}
