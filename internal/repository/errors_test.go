package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("find product: %w", &StoreError{Kind: KindNotFound, Entity: "product"})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, &StoreError{Kind: KindConflict}))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestStoreError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := &StoreError{Kind: KindConflict, Entity: "ingredient", Field: "nom", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "ingredient: conflict (nom): duplicate key", err.Error())
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}
