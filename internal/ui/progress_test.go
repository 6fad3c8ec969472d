package ui

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Cyclone1070/commitsearch/internal/ui/views"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestProgress_CancelIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	var out bytes.Buffer
	svc := NewProgressService(&out, time.Millisecond, views.DefaultStyles())

	p := svc.Start(context.Background(), "Searching commits")
	time.Sleep(5 * time.Millisecond)
	p.Cancel()
	p.Cancel()

	select {
	case <-p.Done():
	default:
		t.Fatal("Done not closed after Cancel")
	}
	assert.Contains(t, out.String(), "Searching commits")
	assert.Contains(t, out.String(), "\r\033[K")
}

func TestProgress_SuspendKeepsScopeOpen(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := NewProgressService(&bytes.Buffer{}, time.Millisecond, views.DefaultStyles())
	p := svc.Start(context.Background(), "")

	p.(Suspender).Suspend()
	select {
	case <-p.Done():
		t.Fatal("Suspend must not cancel the scope")
	default:
	}

	p.Cancel()
	<-p.Done()
}

func TestProgress_ContextCancelStopsSpinner(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	svc := NewProgressService(&bytes.Buffer{}, time.Hour, views.DefaultStyles())
	p := svc.Start(ctx, "x")

	cancel()
	p.Cancel()
}

func TestNewProgressService_DefaultInterval(t *testing.T) {
	svc := NewProgressService(&bytes.Buffer{}, 0, views.DefaultStyles())

	assert.Positive(t, svc.interval)
	assert.NotEmpty(t, svc.frames)
}
