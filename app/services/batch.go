package services

import (
	"context"
	"fmt"
	"sync"
)

// ItemResult is the outcome of one call within a fan-out batch.
type ItemResult struct {
	ID  string
	Err error
}

// BatchOutcome reports every item of a fan-out batch individually. The batch
// is not transactional: items that succeeded stay applied even when siblings
// fail, and a failing item never cancels in-flight siblings.
type BatchOutcome struct {
	Results []ItemResult
}

func (b BatchOutcome) Succeeded() int {
	n := 0
	for _, r := range b.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

func (b BatchOutcome) Failed() []ItemResult {
	var failed []ItemResult
	for _, r := range b.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Err returns nil when every item succeeded, otherwise an aggregate error
// naming the first failure and the failure count.
func (b BatchOutcome) Err() error {
	failed := b.Failed()
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d updates failed, first: %s: %w", len(failed), len(b.Results), failed[0].ID, failed[0].Err)
}

// RunBatch fans out fn over the given IDs, one goroutine each, and waits for
// all of them to settle.
func RunBatch(ctx context.Context, ids []string, fn func(ctx context.Context, id string) error) BatchOutcome {
	results := make([]ItemResult, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i] = ItemResult{ID: id, Err: fn(ctx, id)}
		}(i, id)
	}
	wg.Wait()

	return BatchOutcome{Results: results}
}
