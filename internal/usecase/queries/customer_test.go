//go:build unit

package queries_test

import (
	"context"
	"testing"

	"crm-service/internal/infra"
	"crm-service/internal/pkg/errs"
	"crm-service/internal/usecase/queries"
	"crm-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCustomerReadStore struct {
	count    int64
	countErr error
	view     *queries.CustomerView
	findErr  error
}

func (s *stubCustomerReadStore) Count(context.Context) (int64, error) {
	return s.count, s.countErr
}

func (s *stubCustomerReadStore) FindByID(context.Context, uuid.UUID) (*queries.CustomerView, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.view, nil
}

func TestCustomerQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("Count passes through", func(t *testing.T) {
		q := queries.NewCustomerQueries(&stubCustomerReadStore{count: 7})

		count, err := q.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})

	t.Run("GetByID returns the view", func(t *testing.T) {
		view := builder.NewCustomerBuilder().BuildView()
		q := queries.NewCustomerQueries(&stubCustomerReadStore{view: &view})

		got, err := q.GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view.Email, got.Email)
	})

	t.Run("GetByID maps missing rows to customer not found", func(t *testing.T) {
		store := &stubCustomerReadStore{
			findErr: infra.WrapRepoErr("customer not found", errs.New("no rows"), infra.KindNotFound),
		}
		q := queries.NewCustomerQueries(store)

		got, err := q.GetByID(ctx, uuid.New())
		require.Nil(t, got)
		require.ErrorIs(t, err, errs.ErrCustomerNotFound)
	})

	t.Run("GetByID passes other failures through", func(t *testing.T) {
		store := &stubCustomerReadStore{
			findErr: infra.WrapRepoErr("query failed", errs.New("connection refused")),
		}
		q := queries.NewCustomerQueries(store)

		_, err := q.GetByID(ctx, uuid.New())
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrCustomerNotFound)
	})
}
