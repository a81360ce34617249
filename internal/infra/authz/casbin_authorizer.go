// Package authz evaluates role permission matrices with a casbin enforcer.
package authz

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Subject is the role name, object the resource.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	RoleRepo repository.RoleRepository
	UserRepo repository.UserRepository
}

type CasbinAuthorizer struct {
	enforcer atomic.Pointer[casbin.Enforcer]
	roleRepo repository.RoleRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// New builds the authorizer, loads policies on start and keeps them fresh on an interval
func New(params Params) (service.Authorizer, error) {
	a, err := NewCasbinAuthorizer(params.RoleRepo, params.UserRepo, params.Logger)
	if err != nil {
		return nil, err
	}

	interval := time.Duration(0)
	if params.Config.Authz != nil {
		interval = params.Config.Authz.ReloadInterval
	}
	reloadCtx, cancelReload := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := a.Reload(ctx); err != nil {
				return err
			}
			if interval > 0 {
				go a.reloadLoop(reloadCtx, interval)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelReload()

			return nil
		},
	})

	return a, nil
}

// NewCasbinAuthorizer returns an authorizer with an empty policy set; call Reload before use.
func NewCasbinAuthorizer(roleRepo repository.RoleRepository, userRepo repository.UserRepository, logger *slog.Logger) (*CasbinAuthorizer, error) {
	a := &CasbinAuthorizer{
		roleRepo: roleRepo,
		userRepo: userRepo,
		logger:   logger,
	}

	enforcer, err := newEnforcer(nil)
	if err != nil {
		return nil, err
	}
	a.enforcer.Store(enforcer)

	return a, nil
}

func newEnforcer(rules [][]string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse casbin model")
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize casbin enforcer")
	}

	if len(rules) > 0 {
		if _, err := enforcer.AddPolicies(rules); err != nil {
			return nil, errors.Wrap(err, "failed to load casbin policies")
		}
	}

	return enforcer, nil
}

// Reload rebuilds the enforcer from every stored role and swaps it in.
func (a *CasbinAuthorizer) Reload(ctx context.Context) error {
	roles, err := a.roleRepo.ListRoles(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load roles")
	}

	rules := make([][]string, 0)
	for _, role := range roles {
		for _, granted := range role.Permissions.Granted() {
			rules = append(rules, []string{role.Name, granted[0], granted[1]})
		}
	}

	enforcer, err := newEnforcer(rules)
	if err != nil {
		return err
	}
	a.enforcer.Store(enforcer)

	logs.FromContext(ctx, a.logger).Debug("Authorization policies reloaded",
		slog.Int("roles", len(roles)),
		slog.Int("rules", len(rules)),
	)

	return nil
}

func (a *CasbinAuthorizer) reloadLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.Reload(ctx); err != nil && ctx.Err() == nil {
				a.logger.Warn("Failed to reload authorization policies", slog.Any("error", err))
			}
		}
	}
}

// EnsureActive resolves the user and rejects unknown or blocked accounts.
func (a *CasbinAuthorizer) EnsureActive(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := a.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WithDetails("user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}
	if user.IsBlocked {
		return nil, domainerrors.ErrUserBlocked
	}

	return user, nil
}

// Authorize checks the actor's roles for resource.action.
// The roles come from Authenticate, which already rejected unknown and blocked users.
func (a *CasbinAuthorizer) Authorize(ctx context.Context, actor entity.Actor, resource entity.Resource, action entity.Action) error {
	enforcer := a.enforcer.Load()
	for _, role := range actor.Roles {
		allowed, err := enforcer.Enforce(role, string(resource), string(action))
		if err != nil {
			return errors.Wrap(err, "permission check failed")
		}
		if allowed {
			return nil
		}
	}

	logs.FromContext(ctx, a.logger).Info("Permission denied",
		slog.String("user_id", actor.UserID.String()),
		slog.Any("roles", actor.Roles),
		slog.String("resource", string(resource)),
		slog.String("action", string(action)),
	)

	return domainerrors.ErrPermissionDenied.WithDetails(string(resource) + "." + string(action))
}
