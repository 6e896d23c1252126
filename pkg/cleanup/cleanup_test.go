package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/workout/pkg/cleanup"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestCleanUp(t *testing.T) {
	var order []string
	errFirst := errors.New("first failed")
	errThird := errors.New("third failed")
	cleanup.Register(&cleanup.Job{Name: "first", F: func() error {
		order = append(order, "first")
		return errFirst
	}})
	cleanup.Register(&cleanup.Job{Name: "second", F: func() error {
		order = append(order, "second")
		return nil
	}})
	cleanup.Register(&cleanup.Job{Name: "third", F: func() error {
		order = append(order, "third")
		return errThird
	}})

	err := cleanup.CleanUp()
	assert.Equal(t, []string{"third", "second", "first"}, order)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errThird)
	assert.Len(t, multierr.Errors(err), 2)

	t.Run("jobs run once", func(t *testing.T) {
		assert.NoError(t, cleanup.CleanUp())
		assert.Len(t, order, 3)
	})
}
