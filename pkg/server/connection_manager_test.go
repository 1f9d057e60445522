package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"send-email-api/internal/config"
)

func TestConnectionManagerInitializesOnce(t *testing.T) {
	loads := 0
	cm := NewConnectionManager(func() (*config.Config, error) {
		loads++
		return testConfig(), nil
	})

	first, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	second, err := cm.GetContainer(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loads)

	require.NoError(t, cm.Cleanup())
	third, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, loads)
}

func TestConnectionManagerRetriesAfterFailure(t *testing.T) {
	fail := true
	cm := NewConnectionManager(func() (*config.Config, error) {
		if fail {
			return nil, errors.New("bad config")
		}
		return testConfig(), nil
	})

	_, err := cm.GetContainer(context.Background())
	require.Error(t, err)

	fail = false
	container, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, container)
}
