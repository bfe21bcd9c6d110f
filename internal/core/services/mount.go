package services

import (
	"context"
	"sync"

	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driving"
	"github.com/mdsolution/vitrine/internal/logger"
)

// SurfaceMount tracks one mounted display surface.
//
// A new mount starts out showing the fallback catalog. Mount triggers a
// single asynchronous resolution; when it completes, the result replaces
// the fallback and onChange is called. Unmount cancels the in-flight
// fetch, and any result that arrives afterwards is dropped without
// touching state or calling onChange.
//
// onChange runs with the mount's lock held and must not call back into
// the mount.
type SurfaceMount struct {
	content  driving.ContentService
	name     string
	onChange func(domain.Resolution)

	mu         sync.Mutex
	current    domain.Resolution
	generation uint64
	mounted    bool
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewSurfaceMount creates an unmounted surface showing its fallback catalog.
func NewSurfaceMount(
	content driving.ContentService,
	name string,
	onChange func(domain.Resolution),
) (*SurfaceMount, error) {
	initial, err := content.Fallback(name)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	close(done)

	return &SurfaceMount{
		content:  content,
		name:     name,
		onChange: onChange,
		current:  *initial,
		done:     done,
	}, nil
}

// Name returns the surface name.
func (m *SurfaceMount) Name() string {
	return m.name
}

// Mount starts resolving the surface. Calling Mount on a mounted
// surface does nothing.
func (m *SurfaceMount) Mount(ctx context.Context) {
	m.mu.Lock()
	if m.mounted {
		m.mu.Unlock()
		return
	}
	m.generation++
	gen := m.generation
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.mounted = true
	done := make(chan struct{})
	m.done = done
	m.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		res, err := m.content.Resolve(ctx, m.name)
		if err != nil {
			logger.Warn("Resolving %s failed: %v", m.name, err)
			return
		}
		m.apply(gen, res)
	}()
}

// Unmount cancels any in-flight resolution. Results arriving after
// Unmount returns are discarded.
func (m *SurfaceMount) Unmount() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.mounted {
		return
	}
	m.mounted = false
	m.generation++
	m.cancel()
}

// Mounted reports whether the surface is mounted.
func (m *SurfaceMount) Mounted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounted
}

// Current returns the resolution currently on display.
func (m *SurfaceMount) Current() domain.Resolution {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := m.current
	res.Descriptors = domain.CloneDescriptors(m.current.Descriptors)
	return res
}

// Done returns a channel closed when the latest mount's resolution
// has finished, whether it was applied or discarded.
func (m *SurfaceMount) Done() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

func (m *SurfaceMount) apply(gen uint64, res *domain.Resolution) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.mounted || gen != m.generation {
		logger.Debug("Discarding resolution for unmounted surface %s", m.name)
		return
	}
	m.current = *res
	if m.onChange != nil {
		m.onChange(*res)
	}
}
