package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := Conflict("Item is no longer available")

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindConflict, kind)

	_, ok = KindOf(errors.New("driver: bad connection"))
	assert.False(t, ok)
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := NotFound("Transaction not found")
	wrapped := fmt.Errorf("update status: %w", inner)

	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindConflict))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("duplicate entry")
	err := Wrap(KindConflict, "You have already rated this transaction", cause)

	assert.True(t, IsKind(err, KindConflict))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "duplicate entry")
}
