package mongo

import "go.uber.org/fx"

// Module provides the MongoDB-backed repositories.
var Module = fx.Module("mongo",
	fx.Provide(
		New,
		NewTransactionManager,
		NewOrderRepository,
		NewOrderEventRepository,
		NewRoleRepository,
		NewUserRepository,
	),
)
