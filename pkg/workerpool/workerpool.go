// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Range runs fn for every index in [0, n) on workerCount goroutines. The first error cancels the
// remaining work, invokes onCancel (when set) and is returned.
func Range(ctx context.Context, workerCount, n int, fn func(context.Context, int) error, onCancel func()) error {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > n && n > 0 {
		workerCount = n
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			if onCancel != nil {
				onCancel()
			}
			cancel()
		})
	}

	tasks := make(chan int, workerCount)
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-tasks:
					if !ok {
						return
					}
					if err := fn(ctx, i); err != nil {
						fail(err)
						return
					}
				}
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- i:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
