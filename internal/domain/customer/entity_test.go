//go:build unit

package customer_test

import (
	"testing"

	"crm-service/internal/domain/customer"
	"crm-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CustomerBuilder)
	errIs  error
}

func TestCustomer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Alice Johnson", actual.Name().Value())
		assert.Equal(t, "alice@example.com", actual.Email().Value())
		assert.Equal(t, "+1234567890", actual.Phone().Value())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.CustomerBuilder) { b.Name = "" },
				errIs:  customer.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.CustomerBuilder) { b.Name = "   " },
				errIs:  customer.ErrEmptyName,
			},
			{
				name:   "single character name",
				mutate: func(b *builder.CustomerBuilder) { b.Name = "A" },
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty email",
				mutate: func(b *builder.CustomerBuilder) { b.Email = "" },
				errIs:  customer.ErrEmptyEmail,
			},
			{
				name:   "whitespace only email",
				mutate: func(b *builder.CustomerBuilder) { b.Email = "  " },
				errIs:  customer.ErrEmptyEmail,
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty phone is allowed",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "" },
			},
			{
				name:   "international format with plus",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "+1234567890" },
			},
			{
				name:   "international format without plus",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "1234567890" },
			},
			{
				name:   "minimum digit count",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "+1234567" },
			},
			{
				name:   "maximum digit count",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "+123456789012345" },
			},
			{
				name:   "US dashed format",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "123-456-7890" },
			},
			{
				name:   "too few digits",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "+123456" },
				errIs:  customer.ErrInvalidPhoneFormat,
			},
			{
				name:   "too many digits",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "+1234567890123456" },
				errIs:  customer.ErrInvalidPhoneFormat,
			},
			{
				name:   "letters in phone",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "12345abcde" },
				errIs:  customer.ErrInvalidPhoneFormat,
			},
			{
				name:   "misplaced dashes",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "12-3456-7890" },
				errIs:  customer.ErrInvalidPhoneFormat,
			},
			{
				name:   "plus in the middle",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = "123+4567890" },
				errIs:  customer.ErrInvalidPhoneFormat,
			},
		})
	})

	t.Run("name and email trimming", func(t *testing.T) {
		actual, err := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
			b.Name = "  Alice Johnson  "
			b.Email = "  alice@example.com  "
		}).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Alice Johnson", actual.Name().Value())
		assert.Equal(t, "alice@example.com", actual.Email().Value())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		first, err1 := builder.NewCustomerBuilder().BuildDomain()
		second, err2 := builder.NewCustomerBuilder().BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestPhoneIsEmpty(t *testing.T) {
	empty, err := customer.NewPhone("")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	filled, err := customer.NewPhone("+1234567890")
	require.NoError(t, err)
	assert.False(t, filled.IsEmpty())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCustomerBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
