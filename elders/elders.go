package elders

// Elder is the care recipient record ("idoso"). Guardian and caregiver links
// are maintained by the backend; this client only reads and submits them.
type Elder struct {
	ID          string   `json:"id"`
	Name        string   `json:"nome"`
	BirthDate   string   `json:"dataNascimento,omitempty"`
	GuardianID  string   `json:"responsavelId,omitempty"`
	CaregiverID string   `json:"cuidadorId,omitempty"`
	PhotoURL    string   `json:"fotoUrl,omitempty"`
	Conditions  []string `json:"condicoesSaude,omitempty"`
}

type Lookup map[string]Elder

func NewLookup(list []Elder) Lookup {
	lookup := make(Lookup, len(list))
	for _, e := range list {
		lookup[e.ID] = e
	}
	return lookup
}

func (l Lookup) Name(id string) (string, bool) {
	e, ok := l[id]
	if !ok {
		return "", false
	}
	return e.Name, true
}
