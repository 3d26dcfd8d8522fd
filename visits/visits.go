package visits

// Visit is a scheduled or past visit by a guardian to an elder, accompanied
// by a caregiver. Records are created through Scheduler and immutable here
// afterwards; the backend owns their lifecycle.
type Visit struct {
	ID          string   `json:"id"`
	Date        FlexTime `json:"dataVisita"`
	Location    string   `json:"localVisita,omitempty"`
	GuardianID  string   `json:"responsavelId"`
	CaregiverID string   `json:"cuidadorId"`
	ElderID     string   `json:"idosoId"`

	// Display names resolved client-side by the aggregator from the lookup
	// collections loaded for the current role. Never persisted, stale as soon
	// as the underlying record changes before the next refetch.
	GuardianName  string `json:"responsavelNome,omitempty"`
	CaregiverName string `json:"cuidadorNome,omitempty"`
	ElderName     string `json:"idosoNome,omitempty"`
}

// UnknownName is substituted for any display name whose referenced id is not
// present in the currently loaded lookup set.
const UnknownName = "Unknown"

// NewVisit is the POST /visitas body. The date is always submitted as an
// ISO-8601 string regardless of how the backend later returns it.
type NewVisit struct {
	Date        string `json:"dataVisita"`
	GuardianID  string `json:"responsavelId"`
	CaregiverID string `json:"cuidadorId"`
	ElderID     string `json:"idosoId"`
	Location    string `json:"localVisita"`
}
