package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against a fresh factory prepared by setup.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
