package rod

import (
	"context"
	"sync"

	"github.com/go-rod/rod"
)

// DefaultPoolSize serializes navigations through a single browser session.
const DefaultPoolSize = 1

// Tabs opens and closes browser tabs.
type Tabs interface {
	OpenTab() (*rod.Page, error)
	CloseTab(page *rod.Page)
}

// SessionPool bounds the number of tabs navigating at once. Each acquired
// Session owns a fresh tab, so no page state leaks between fetches.
type SessionPool struct {
	tabs  Tabs
	slots chan struct{}
}

// NewSessionPool returns a pool allowing size concurrent sessions. A size of
// zero or less selects DefaultPoolSize.
func NewSessionPool(tabs Tabs, size int) *SessionPool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &SessionPool{
		tabs:  tabs,
		slots: make(chan struct{}, size),
	}
}

// Size returns the maximum number of concurrent sessions.
func (p *SessionPool) Size() int {
	return cap(p.slots)
}

// Acquire blocks until a slot is free or ctx is done, then opens a tab.
// The returned Session must be released.
func (p *SessionPool) Acquire(ctx context.Context) (*Session, error) {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	page, err := p.tabs.OpenTab()
	if err != nil {
		<-p.slots
		return nil, err
	}
	return &Session{Page: page, pool: p}, nil
}

// Session is a leased browser tab.
type Session struct {
	Page *rod.Page

	pool *SessionPool
	once sync.Once
}

// Release closes the tab and frees the slot. Extra calls are no-ops.
func (s *Session) Release() {
	s.once.Do(func() {
		s.pool.tabs.CloseTab(s.Page)
		<-s.pool.slots
	})
}
