package ui

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	orchmodels "github.com/Cyclone1070/commitsearch/internal/orchestrator/models"
	"github.com/Cyclone1070/commitsearch/internal/ui/views"
	"github.com/charmbracelet/bubbles/spinner"
)

// ProgressService draws a spinner line on out while a scope is open.
type ProgressService struct {
	out      io.Writer
	interval time.Duration
	styles   views.Styles
	frames   []string
}

// NewProgressService creates a ProgressService drawing spinner.Dot frames every interval.
func NewProgressService(out io.Writer, interval time.Duration, styles views.Styles) *ProgressService {
	if interval <= 0 {
		interval = spinner.Dot.FPS
	}
	return &ProgressService{
		out:      out,
		interval: interval,
		styles:   styles,
		frames:   spinner.Dot.Frames,
	}
}

// Start opens a progress scope. The caller must Cancel it.
func (s *ProgressService) Start(ctx context.Context, label string) orchmodels.Progress {
	p := &progress{
		svc:   s,
		label: label,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	p.wg.Add(1)
	go p.spin(ctx)
	return p
}

// progress implements orchmodels.Progress and Suspender
type progress struct {
	svc   *ProgressService
	label string

	stop chan struct{}
	done chan struct{}

	stopOnce   sync.Once
	cancelOnce sync.Once
	wg         sync.WaitGroup
}

func (p *progress) spin(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.svc.interval)
	defer ticker.Stop()

	frame := 0
	p.draw(frame)
	for {
		select {
		case <-p.stop:
			p.clear()
			return
		case <-ctx.Done():
			p.clear()
			return
		case <-ticker.C:
			frame = (frame + 1) % len(p.svc.frames)
			p.draw(frame)
		}
	}
}

func (p *progress) draw(frame int) {
	fmt.Fprintf(p.svc.out, "\r%s", views.RenderProgress(p.svc.frames[frame], p.label, p.svc.styles))
}

func (p *progress) clear() {
	fmt.Fprint(p.svc.out, "\r\033[K")
}

// Suspend stops drawing and waits for the spinner goroutine to exit.
func (p *progress) Suspend() {
	p.stopOnce.Do(func() {
		close(p.stop)
		p.wg.Wait()
	})
}

// Cancel releases the scope. Only the first call has an effect.
func (p *progress) Cancel() {
	p.cancelOnce.Do(func() {
		p.Suspend()
		close(p.done)
	})
}

// Done is closed once the scope is cancelled.
func (p *progress) Done() <-chan struct{} {
	return p.done
}
