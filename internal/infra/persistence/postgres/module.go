package postgres

import "go.uber.org/fx"

// Module provides the PostgreSQL-backed repositories.
var Module = fx.Module("postgres",
	fx.Provide(
		New,
		NewTransactionManager,
		NewOrderRepository,
		NewOrderEventRepository,
		NewRoleRepository,
		NewUserRepository,
	),
)
