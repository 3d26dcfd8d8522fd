package users

// Roles as the backend spells them. The wire values are Portuguese and are
// matched verbatim, accents included.
const (
	RoleAdmin     = "Admin"
	RoleCaregiver = "Cuidador"
	RoleGuardian  = "Responsável"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"tipo"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) IsCaregiver() bool {
	return u.Role == RoleCaregiver
}

func (u User) IsGuardian() bool {
	return u.Role == RoleGuardian
}

func FilterByRole(list []User, role string) []User {
	filtered := make([]User, 0, len(list))
	for _, u := range list {
		if u.Role == role {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// Lookup indexes users by id for display-name resolution.
type Lookup map[string]User

func NewLookup(list []User) Lookup {
	lookup := make(Lookup, len(list))
	for _, u := range list {
		lookup[u.ID] = u
	}
	return lookup
}

func (l Lookup) Name(id string) (string, bool) {
	u, ok := l[id]
	if !ok {
		return "", false
	}
	return u.Name, true
}
