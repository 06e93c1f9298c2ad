package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatchAllSucceed(t *testing.T) {
	outcome := RunBatch(context.Background(), []string{"a", "b", "c"}, func(ctx context.Context, id string) error {
		return nil
	})

	assert.Equal(t, 3, outcome.Succeeded())
	assert.Empty(t, outcome.Failed())
	assert.NoError(t, outcome.Err())
}

func TestRunBatchPartialFailure(t *testing.T) {
	outcome := RunBatch(context.Background(), []string{"a", "b", "c"}, func(ctx context.Context, id string) error {
		if id == "b" {
			return fmt.Errorf("boom")
		}
		return nil
	})

	assert.Equal(t, 2, outcome.Succeeded())
	require.Len(t, outcome.Failed(), 1)
	assert.Equal(t, "b", outcome.Failed()[0].ID)

	err := outcome.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 updates failed")
	assert.Contains(t, err.Error(), "b")
}

func TestRunBatchSiblingsNotCancelled(t *testing.T) {
	// A failing item must not stop its siblings from running.
	ran := make(chan string, 3)
	outcome := RunBatch(context.Background(), []string{"a", "b", "c"}, func(ctx context.Context, id string) error {
		ran <- id
		if id == "a" {
			return fmt.Errorf("boom")
		}
		return nil
	})
	close(ran)

	assert.Len(t, ran, 3)
	assert.Equal(t, 2, outcome.Succeeded())
}

func TestRunBatchEmpty(t *testing.T) {
	outcome := RunBatch(context.Background(), nil, func(ctx context.Context, id string) error {
		t.Fatal("fn must not be called for an empty batch")
		return nil
	})
	assert.Equal(t, 0, outcome.Succeeded())
	assert.NoError(t, outcome.Err())
}
