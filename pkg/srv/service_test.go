package srv

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

type namedService struct {
	name string
	rec  *recorder
	err  error
}

func (s *namedService) Start(ctx context.Context) error { return nil }

func (s *namedService) Shutdown(ctx context.Context) error {
	s.rec.add(s.name)
	return s.err
}

func TestShutdownServices_ReverseOrder(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	services := []Service{
		NewCleanup(func() error { rec.add("db"); return nil }),
		&namedService{name: "telegram", rec: rec, err: errors.New("boom")},
		&namedService{name: "cli", rec: rec},
	}

	ShutdownServices(ctx, services)

	assert.Equal(t, []string{"cli", "telegram", "db"}, rec.order)
}

func TestNewCleanup_NilFunc(t *testing.T) {
	svc := NewCleanup(nil)
	assert.NoError(t, svc.Start(context.Background()))
	assert.NoError(t, svc.Shutdown(context.Background()))
}
