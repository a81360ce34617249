package mongo

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// sessionTransactionManager runs units of work in a MongoDB multi-document transaction.
// Transactions need a replica set or sharded cluster.
type sessionTransactionManager struct {
	db *mongo.Database
}

// NewTransactionManager is the constructor for sessionTransactionManager.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &sessionTransactionManager{db: db}
}

// sessionRepositoryFactory hands out repositories bound to one session.
type sessionRepositoryFactory struct {
	db      *mongo.Database
	session mongo.Session
}

func (f *sessionRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{collection: f.db.Collection(ordersCollection), session: f.session}
}

func (f *sessionRepositoryFactory) NewOrderEventRepository() repository.OrderEventRepository {
	return &orderEventRepository{collection: f.db.Collection(orderEventsCollection), session: f.session}
}

func (f *sessionRepositoryFactory) NewRoleRepository() repository.RoleRepository {
	return &roleRepository{collection: f.db.Collection(rolesCollection), session: f.session}
}

// Execute runs fn inside session.WithTransaction. The driver may re-run fn on transient errors.
func (tm *sessionTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start MongoDB session")
	}
	defer session.EndSession(ctx)

	factory := &sessionRepositoryFactory{db: tm.db, session: session}
	_, err = session.WithTransaction(ctx, func(mongo.SessionContext) (any, error) {
		return nil, fn(factory)
	})

	return err
}

// withSession attaches the session so operations join its transaction.
func withSession(ctx context.Context, session mongo.Session) context.Context {
	if session == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, session)
}
