package domain_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mfcarvalho/bookkeep/pkg/domain"
)

func TestValidateTransfer(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, domain.ValidateTransfer(a, b, dec("10.00")))
	})

	t.Run("same account", func(t *testing.T) {
		err := domain.ValidateTransfer(a, a, dec("10.00"))
		assert.ErrorIs(t, err, domain.ErrSameAccount)
	})

	t.Run("zero amount", func(t *testing.T) {
		err := domain.ValidateTransfer(a, b, dec("0"))
		assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)
	})

	t.Run("negative amount", func(t *testing.T) {
		err := domain.ValidateTransfer(a, b, dec("-1"))
		assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)
	})
}

func TestLockOrder(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	first1, second1 := domain.LockOrder(a, b)
	first2, second2 := domain.LockOrder(b, a)

	// The acquisition order must not depend on argument order.
	assert.Equal(t, first1, first2)
	assert.Equal(t, second1, second2)
	assert.LessOrEqual(t, bytes.Compare(first1[:], second1[:]), 0)

	same1, same2 := domain.LockOrder(a, a)
	assert.Equal(t, a, same1)
	assert.Equal(t, a, same2)
}
