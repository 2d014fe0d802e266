package model

import (
	"fmt"

	"moviemania/internal/recordio"
)

// Role defines the access level carried by a credential record.
type Role string

// Existing roles.
const (
	RoleUser  = Role("user")
	RoleAdmin = Role("admin")
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Credential defines one stored login record. PasswordHash holds a bcrypt
// hash, never the plain password.
type Credential struct {
	Username     string
	PasswordHash string
	Role         Role
}

func (c *Credential) String() string {
	return fmt.Sprintf("Credential{username=%s, role=%s}", c.Username, c.Role)
}

// CredentialToRow encodes a credential as one delimited row.
func CredentialToRow(c *Credential) []string {
	return []string{c.Username, c.PasswordHash, string(c.Role)}
}

// CredentialFromRow decodes one credential row. Legacy two-field rows
// (username, password hash) decode with the user role.
func CredentialFromRow(line int, row []string) (*Credential, error) {
	c := &Credential{Role: RoleUser}
	switch len(row) {
	case 3:
		c.Role = Role(row[2])
		fallthrough
	case 2:
		c.Username = row[0]
		c.PasswordHash = row[1]
	default:
		return nil, &recordio.DecodeError{
			Line:  line,
			Field: len(row),
			Cause: fmt.Errorf("expected 2 or 3 fields, got %d", len(row)),
		}
	}
	return c, nil
}

// Session defines the authenticated state the presentation layer carries
// between calls. It replaces the original design's process-wide current-user
// global.
type Session struct {
	Username string
	Role     Role
	Token    string
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
