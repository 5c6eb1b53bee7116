package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/sitelens"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the default number of tabs served before the browser is
// relaunched.
const DefaultMaxPages = 75

var _ Tabs = (*BrowserManager)(nil)

// BrowserManager owns a headless Chrome process and hands out fresh tabs.
// Chrome's baseline memory keeps growing even when tabs are closed, so the
// process is relaunched after maxPages tabs, once no tab is open.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	served   int64
	open     int
	maxPages int64
	closed   bool
}

// NewBrowserManager launches a headless Chrome browser. A maxPages of zero or
// less selects DefaultMaxPages. Close must be called when the manager is no
// longer needed.
func NewBrowserManager(maxPages int64) (*BrowserManager, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	bm := &BrowserManager{maxPages: maxPages}
	if err := bm.launch(); err != nil {
		return nil, err
	}
	return bm, nil
}

// OpenTab returns a blank tab on the current browser.
func (bm *BrowserManager) OpenTab() (*rod.Page, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, sitelens.Errorf(sitelens.EINVALID, "browser closed")
	}
	if bm.served >= bm.maxPages && bm.open == 0 {
		bm.relaunch()
	}

	page, err := bm.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, sitelens.WrapError(sitelens.EFETCH, err, "failed to open browser tab")
	}
	bm.open++
	return page, nil
}

// CloseTab closes a tab returned by OpenTab and counts it toward the relaunch
// threshold.
func (bm *BrowserManager) CloseTab(page *rod.Page) {
	if page != nil {
		_ = page.Close()
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()
	bm.open--
	bm.served++
}

// Served returns the number of tabs closed since the last launch.
func (bm *BrowserManager) Served() int64 {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.served
}

// Close shuts the browser down. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	return bm.shutdown()
}

// launch starts a browser with flags that keep background tabs responsive.
// Must be called with mu held or before the manager is shared.
func (bm *BrowserManager) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser = browser
	bm.launcher = l
	bm.served = 0
	return nil
}

// shutdown must be called with mu held.
func (bm *BrowserManager) shutdown() error {
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// relaunch replaces the browser, keeping the old one if the new launch fails.
// Must be called with mu held.
func (bm *BrowserManager) relaunch() {
	oldBrowser, oldLauncher := bm.browser, bm.launcher
	if err := bm.launch(); err != nil {
		bm.browser, bm.launcher = oldBrowser, oldLauncher
		return
	}
	_ = oldBrowser.Close()
	oldLauncher.Kill()
}
