package async_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
	"github.com/opsnexus/opsnexus/pkg/utils/async"
)

func waitFor(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async handler did not complete within timeout")
	}
}

func TestDispatch(t *testing.T) {
	t.Run("executes handler", func(t *testing.T) {
		var wg sync.WaitGroup
		var executed bool

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			executed = true
			return nil
		})

		waitFor(t, &wg)
		gt.True(t, executed)
	})

	t.Run("handler error is absorbed", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			return goerr.New("slack unavailable")
		})
		waitFor(t, &wg)
	})

	t.Run("recovers from panic", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			panic("test panic")
		})
		waitFor(t, &wg)
	})

	t.Run("outlives cancelled request context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var wg sync.WaitGroup
		var ctxErr error
		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			ctxErr = ctx.Err()
			return nil
		})

		waitFor(t, &wg)
		gt.NoError(t, ctxErr)
	})
}

func TestDispatchPreservesAuthContext(t *testing.T) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	results := make(map[types.Username]types.CompanyID)

	for i := range 5 {
		authCtx := &model.AuthContext{
			Username:  types.Username(fmt.Sprintf("user%d", i)),
			CompanyID: types.CompanyID(100 + i),
			Role:      types.RoleManager,
		}
		ctx := model.WithAuthContext(context.Background(), authCtx)

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			time.Sleep(5 * time.Millisecond)

			preserved, ok := model.GetAuthContext(ctx)
			if !ok {
				return nil
			}
			mu.Lock()
			results[preserved.Username] = preserved.CompanyID
			mu.Unlock()
			return nil
		})
	}

	waitFor(t, &wg)
	gt.Equal(t, 5, len(results))
	for i := range 5 {
		gt.Equal(t, types.CompanyID(100+i), results[types.Username(fmt.Sprintf("user%d", i))])
	}
}
