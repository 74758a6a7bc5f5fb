//go:build unit

package commands_test

import (
	"context"
	"testing"

	"crm-service/internal/pkg/errs"
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestockCommands_Restock(t *testing.T) {
	ctx := context.Background()
	policy := commands.RestockPolicy{Threshold: 10, Increment: 10}

	t.Run("reports every updated product", func(t *testing.T) {
		uow := newFakeUoW()
		uow.products.restocked = []shared.RestockedProduct{
			{ID: uuid.New(), Name: "Mouse", Stock: 13},
			{ID: uuid.New(), Name: "Cable", Stock: 10},
		}
		uc := commands.NewRestockCommands(uow, policy)

		result, err := uc.Restock(ctx)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.True(t, result.Success)
		assert.Equal(t, "Restocked 2 low-stock products", result.Message)
		assert.Len(t, result.UpdatedProducts, 2)
	})

	t.Run("no low-stock products is still a success", func(t *testing.T) {
		uow := newFakeUoW()
		uc := commands.NewRestockCommands(uow, policy)

		result, err := uc.Restock(ctx)
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, "Restocked 0 low-stock products", result.Message)
		assert.Empty(t, result.UpdatedProducts)
	})

	t.Run("marks store failures as database errors", func(t *testing.T) {
		uow := newFakeUoW()
		uow.products.err = errs.New("connection refused")
		uc := commands.NewRestockCommands(uow, policy)

		result, err := uc.Restock(ctx)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
