package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sahilbrid/nyaay-saathi/internal/platform/health"
	"github.com/sahilbrid/nyaay-saathi/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name).Maybe()
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

// stuck ignores its context until the test ends.
type stuck struct{ release chan struct{} }

func (stuck) Name() string { return "browser" }

func (s stuck) HealthCheck(context.Context) error {
	<-s.release
	return nil
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	refused := errors.New("dial tcp chrome:9222: connection refused")

	tests := []struct {
		name     string
		checkers func(t *testing.T) []*mocks.MockHealthChecker
		want     map[string]error
	}{
		{
			name:     "nothing registered",
			checkers: func(*testing.T) []*mocks.MockHealthChecker { return nil },
			want:     map[string]error{},
		},
		{
			name: "all healthy",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "storage", nil), checker(t, "browser", nil)}
			},
			want: map[string]error{"storage": nil, "browser": nil},
		},
		{
			name: "browser down",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "storage", nil), checker(t, "browser", refused)}
			},
			want: map[string]error{"storage": nil, "browser": refused},
		},
		{
			name: "last registration wins",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "storage", nil), checker(t, "storage", refused)}
			},
			want: map[string]error{"storage": refused},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}

			assert.Equal(t, tt.want, r.CheckAll(t.Context()))
		})
	}
}

func TestCheckAll_PassesContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("storage")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New(health.WithCheckTimeout(0))
	r.Register(c)

	assert.ErrorIs(t, r.CheckAll(ctx)["storage"], context.Canceled)
}

func TestCheckAll_TimesOutSlowCheck(t *testing.T) {
	t.Parallel()

	s := stuck{release: make(chan struct{})}
	t.Cleanup(func() { close(s.release) })

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(s)
	r.Register(checker(t, "storage", nil))

	start := time.Now()
	results := r.CheckAll(t.Context())

	assert.Less(t, time.Since(start), time.Second)
	require.ErrorIs(t, results["browser"], context.DeadlineExceeded)
	assert.NoError(t, results["storage"])
}

func TestCheckAll_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("storage").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
				return
			}
			r.CheckAll(t.Context())
		}()
	}
	wg.Wait()
}
