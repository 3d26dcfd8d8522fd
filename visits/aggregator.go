package visits

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/amparo-care/amparo/elders"
	"github.com/amparo-care/amparo/users"
)

// Aggregator produces the visit list visible to an actor, with display names
// denormalized from whatever lookup collections the actor's role is allowed
// to load:
//
//	Admin      all visits              users (guardians + caregivers), elders
//	Caregiver  own visits as caregiver users (guardians only), elders
//	Guardian   own visits as guardian  elders only
//
// Every fetch for a role is issued concurrently and the aggregation is
// abandoned on the first failure, so a result is always a complete join over
// one consistent snapshot. Ids that resolve to nothing become UnknownName.
type Aggregator struct {
	visits Client
	users  users.Client
	elders elders.Client
	logger *zap.SugaredLogger
}

func NewAggregator(visits Client, users users.Client, elders elders.Client, logger *zap.SugaredLogger) *Aggregator {
	return &Aggregator{
		visits: visits,
		users:  users,
		elders: elders,
		logger: logger,
	}
}

func (a *Aggregator) ListForActor(ctx context.Context, actor users.User) ([]Visit, error) {
	switch actor.Role {
	case users.RoleAdmin:
		return a.listForAdmin(ctx)
	case users.RoleCaregiver:
		return a.listForCaregiver(ctx, actor.ID)
	case users.RoleGuardian:
		return a.listForGuardian(ctx, actor.ID)
	default:
		return nil, fmt.Errorf("unexpected role %q", actor.Role)
	}
}

func (a *Aggregator) listForAdmin(ctx context.Context) ([]Visit, error) {
	var (
		list       []Visit
		directory  []users.User
		recipients []elders.Elder
	)
	if err := a.fetchAll(ctx,
		func(ctx context.Context) (err error) { list, err = a.visits.List(ctx); return },
		func(ctx context.Context) (err error) { directory, err = a.users.List(ctx); return },
		func(ctx context.Context) (err error) { recipients, err = a.elders.List(ctx); return },
	); err != nil {
		return nil, err
	}

	guardians := users.NewLookup(users.FilterByRole(directory, users.RoleGuardian))
	caregivers := users.NewLookup(users.FilterByRole(directory, users.RoleCaregiver))
	elderLookup := elders.NewLookup(recipients)

	enriched := make([]Visit, 0, len(list))
	for _, v := range list {
		enriched = append(enriched, resolveNames(v, guardians, caregivers, elderLookup))
	}
	return enriched, nil
}

func (a *Aggregator) listForCaregiver(ctx context.Context, caregiverId string) ([]Visit, error) {
	var (
		list       []Visit
		directory  []users.User
		recipients []elders.Elder
	)
	if err := a.fetchAll(ctx,
		func(ctx context.Context) (err error) { list, err = a.visits.ListByCaregiver(ctx, caregiverId); return },
		func(ctx context.Context) (err error) { directory, err = a.users.List(ctx); return },
		func(ctx context.Context) (err error) { recipients, err = a.elders.List(ctx); return },
	); err != nil {
		return nil, err
	}

	guardians := users.NewLookup(users.FilterByRole(directory, users.RoleGuardian))
	elderLookup := elders.NewLookup(recipients)

	// The caregiver-scoped query can return the same visit more than once
	// when query windows overlap; the first occurrence wins.
	seen := mapset.NewSet[string]()
	deduplicated := make([]Visit, 0, len(list))
	for _, v := range list {
		if !seen.Add(v.ID) {
			continue
		}
		deduplicated = append(deduplicated, resolveNames(v, guardians, nil, elderLookup))
	}
	return deduplicated, nil
}

func (a *Aggregator) listForGuardian(ctx context.Context, guardianId string) ([]Visit, error) {
	var (
		list       []Visit
		recipients []elders.Elder
	)
	if err := a.fetchAll(ctx,
		func(ctx context.Context) (err error) { list, err = a.visits.ListByGuardian(ctx, guardianId); return },
		func(ctx context.Context) (err error) { recipients, err = a.elders.List(ctx); return },
	); err != nil {
		return nil, err
	}

	elderLookup := elders.NewLookup(recipients)

	enriched := make([]Visit, 0, len(list))
	for _, v := range list {
		enriched = append(enriched, resolveNames(v, nil, nil, elderLookup))
	}
	return enriched, nil
}

func (a *Aggregator) fetchAll(ctx context.Context, fetches ...func(context.Context) error) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		group.Go(func() error {
			return fetch(groupCtx)
		})
	}
	if err := group.Wait(); err != nil {
		a.logger.Errorw("visit aggregation abandoned", "error", err)
		return err
	}
	return nil
}

func resolveNames(v Visit, guardians, caregivers users.Lookup, elderLookup elders.Lookup) Visit {
	v.GuardianName = nameOrUnknown(guardians.Name(v.GuardianID))
	v.CaregiverName = nameOrUnknown(caregivers.Name(v.CaregiverID))
	v.ElderName = nameOrUnknown(elderLookup.Name(v.ElderID))
	return v
}

func nameOrUnknown(name string, ok bool) string {
	if !ok {
		return UnknownName
	}
	return name
}
