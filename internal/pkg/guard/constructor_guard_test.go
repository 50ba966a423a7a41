package guard_test

import (
	"errors"
	"testing"

	"faithcafe/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuard_UsageExample demonstrates the intended embedding
// pattern for a guarded domain object.
func TestConstructorGuard_UsageExample(t *testing.T) {
	type line struct {
		name     string
		quantity int
		guard    guard.ConstructorGuard
	}

	errLineNotConstructed := errors.New("line must be created via newLine")

	newLine := func(name string, quantity int) (line, error) {
		if name == "" {
			return line{}, errors.New("name is required")
		}
		if quantity <= 0 {
			return line{}, errors.New("quantity must be positive")
		}
		return line{name: name, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_object_validates", func(t *testing.T) {
		l, err := newLine("Latte", 2)
		require.NoError(t, err)
		require.NoError(t, l.guard.Validate(errLineNotConstructed))
	})

	t.Run("zero_value_object_fails_validation", func(t *testing.T) {
		var l line
		err := l.guard.Validate(errLineNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errLineNotConstructed, err)
	})

	t.Run("constructor_still_checks_business_rules", func(t *testing.T) {
		_, err := newLine("", 1)
		require.Error(t, err)

		_, err = newLine("Latte", 0)
		require.Error(t, err)
	})
}

func TestConstructorGuard_CopySemantics(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, g.Validate(nil))
		require.NoError(t, cp.Validate(nil))
	})
}
