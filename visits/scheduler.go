package visits

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Scheduler is the create path used by caregivers: it validates the form
// fields and submits the visit with an ISO-8601 date.
type Scheduler struct {
	visits Client
	logger *zap.SugaredLogger
}

func NewScheduler(visits Client, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{visits: visits, logger: logger}
}

type ScheduleParams struct {
	Date        time.Time
	GuardianID  string
	CaregiverID string
	ElderID     string
	Location    string
}

func (p ScheduleParams) validate() error {
	switch {
	case p.Date.IsZero():
		return fmt.Errorf("a visit date is required")
	case p.GuardianID == "":
		return fmt.Errorf("a guardian is required")
	case p.CaregiverID == "":
		return fmt.Errorf("a caregiver is required")
	case p.ElderID == "":
		return fmt.Errorf("an elder is required")
	case strings.TrimSpace(p.Location) == "":
		return fmt.Errorf("a location is required")
	}
	return nil
}

func (s *Scheduler) Schedule(ctx context.Context, params ScheduleParams) (*Visit, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	created, err := s.visits.Create(ctx, NewVisit{
		Date:        params.Date.UTC().Format(time.RFC3339),
		GuardianID:  params.GuardianID,
		CaregiverID: params.CaregiverID,
		ElderID:     params.ElderID,
		Location:    params.Location,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("visit scheduled",
		"visitId", created.ID,
		"elderId", created.ElderID,
		"date", params.Date.UTC().Format(time.RFC3339),
	)
	return created, nil
}
