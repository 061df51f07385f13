package config

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	observer "github.com/imkira/go-observer/v2"

	"github.com/ytget/yt-settings/internal/model"
)

// ErrClosed is returned by Flush once the cell has been closed
var ErrClosed = errors.New("app settings closed")

// AppSettingsCell holds the observable appearance aggregate. Writes are
// queued and applied in order by a single goroutine, which persists the
// value through the store before publishing the new snapshot. Readers only
// ever see whole snapshots.
type AppSettingsCell struct {
	store *Store
	prop  observer.Property[model.AppSettings]
	log   *slog.Logger

	mu     sync.Mutex
	queue  []func()
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

// OpenAppSettings builds the aggregate from the persisted values and starts
// its writer. Call Close to stop it.
func OpenAppSettings(store *Store) *AppSettingsCell {
	c := &AppSettingsCell{
		store: store,
		prop:  observer.NewProperty(store.AppSettings()),
		log:   store.log,
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go c.run()
	return c
}

// Value returns the current snapshot
func (c *AppSettingsCell) Value() model.AppSettings {
	return c.prop.Value()
}

// Observe returns a stream positioned at the current snapshot
func (c *AppSettingsCell) Observe() observer.Stream[model.AppSettings] {
	return c.prop.Observe()
}

// Subscribe calls fn with the current snapshot and then with every later
// one, in order, from its own goroutine until ctx is done.
func (c *AppSettingsCell) Subscribe(ctx context.Context, fn func(model.AppSettings)) {
	stream := c.prop.Observe()
	go func() {
		fn(stream.Value())
		for {
			select {
			case <-ctx.Done():
				return
			case <-stream.Changes():
				fn(stream.Next())
			}
		}
	}()
}

// SwitchDarkThemeMode persists mode and publishes it. It does not block.
func (c *AppSettingsCell) SwitchDarkThemeMode(mode model.DarkThemePreference) {
	c.submit("dark theme", func() {
		c.store.SetDarkTheme(mode)
		c.prop.Update(c.prop.Value().WithDarkTheme(mode))
	})
}

// ModifyThemeSeedColor persists the ARGB seed color and publishes it. It does not block.
func (c *AppSettingsCell) ModifyThemeSeedColor(argb uint32) {
	c.submit("seed color", func() {
		c.store.SetSeedColor(argb)
		c.prop.Update(c.prop.Value().WithSeedColor(argb))
	})
}

// Flush waits until every write submitted before the call has been applied
func (c *AppSettingsCell) Flush(ctx context.Context) error {
	applied := make(chan struct{})
	if !c.enqueue(func() { close(applied) }) {
		return ErrClosed
	}
	select {
	case <-applied:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close applies the pending writes and stops the writer. Later writes are dropped.
func (c *AppSettingsCell) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.signal()
	<-c.done
}

func (c *AppSettingsCell) submit(what string, job func()) {
	if !c.enqueue(job) {
		c.log.Warn("app settings closed, write dropped", "setting", what)
	}
}

func (c *AppSettingsCell) enqueue(job func()) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.queue = append(c.queue, job)
	c.mu.Unlock()
	c.signal()
	return true
}

func (c *AppSettingsCell) signal() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// run is the single writer. Jobs run in submission order.
func (c *AppSettingsCell) run() {
	defer close(c.done)
	for {
		c.mu.Lock()
		jobs := c.queue
		c.queue = nil
		closed := c.closed
		c.mu.Unlock()

		for _, job := range jobs {
			job()
		}
		if len(jobs) > 0 {
			continue
		}
		if closed {
			return
		}
		<-c.wake
	}
}
