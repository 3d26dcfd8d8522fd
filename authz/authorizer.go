package authz

// The command surface is role gated client-side so a guardian never gets as
// far as dispatching a request the backend would reject anyway. The decision
// table lives in an embedded rego policy keyed on the actor's role and a
// "resource:verb" action name.

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/fatih/structs"
	"github.com/open-policy-agent/opa/ast"
	"github.com/open-policy-agent/opa/rego"
	"go.uber.org/zap"

	"github.com/amparo-care/amparo/users"
)

const (
	ActionVisitsRead         = "visits:read"
	ActionVisitsSchedule     = "visits:schedule"
	ActionVisitsExport       = "visits:export"
	ActionUsersRead          = "users:read"
	ActionEldersRead         = "elders:read"
	ActionEldersWrite        = "elders:write"
	ActionEldersLink         = "elders:link"
	ActionTasksRead          = "tasks:read"
	ActionTasksWrite         = "tasks:write"
	ActionMedicationsRead    = "medications:read"
	ActionMedicationsWrite   = "medications:write"
	ActionConditionsRead     = "conditions:read"
	ActionConditionsWrite    = "conditions:write"
	ActionNotificationsRead  = "notifications:read"
	ActionNotificationsWrite = "notifications:write"
	ActionNetworkRead        = "network:read"
)

var (
	//go:embed policy.rego
	authzPolicy string

	ErrNotAllowed = errors.New("the current role is not allowed to perform this action")
)

type Authorizer interface {
	Authorize(ctx context.Context, actor users.User, action string) error
	EvaluatePolicy(ctx context.Context, input map[string]interface{}) error
}

func NewAuthorizer(logger *zap.SugaredLogger) (Authorizer, error) {
	compiler, err := ast.CompileModules(map[string]string{
		"policy.rego": authzPolicy,
	})
	if err != nil {
		return nil, err
	}

	return &embeddedOpaAuthorizer{
		logger: logger,
		policy: compiler,
	}, nil
}

type embeddedOpaAuthorizer struct {
	logger *zap.SugaredLogger
	policy *ast.Compiler
}

var _ Authorizer = &embeddedOpaAuthorizer{}

func (e *embeddedOpaAuthorizer) Authorize(ctx context.Context, actor users.User, action string) error {
	actorStruct := structs.New(actor)
	actorStruct.TagName = "json"

	in := map[string]interface{}{
		"actor":  actorStruct.Map(),
		"action": action,
	}
	return e.EvaluatePolicy(ctx, in)
}

func (e *embeddedOpaAuthorizer) EvaluatePolicy(ctx context.Context, input map[string]interface{}) error {
	r := rego.New(
		rego.Package("amparo.authz"),
		rego.Query("allow"),
		rego.Compiler(e.policy),
		rego.Input(input),
	)

	results, err := r.Eval(ctx)
	if err != nil {
		return fmt.Errorf("unable to evaluate authorization policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return fmt.Errorf("evaluating authorization policy returned no results")
	}

	val, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		return fmt.Errorf("unexpected authorization result: %v", results[0].Expressions[0].Value)
	}

	e.logger.Debugw("authorization policy eval", zap.Any("input", input), zap.Bool("allow", val))

	if !val {
		return ErrNotAllowed
	}

	return nil
}
