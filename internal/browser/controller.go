// Package browser implements the content browser controller: it loads the
// manifest, builds navigation, resolves the selection from the location
// fragment and renders the selected point.
//
// All events are queued as intents and applied one at a time by Run, which
// owns every piece of mutable state. Fetches run in their own goroutines and
// report back through the same queue.
package browser

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/ziadkadry99/writeguide/internal/content"
	"github.com/ziadkadry99/writeguide/internal/logging"
	"github.com/ziadkadry99/writeguide/internal/nav"
	"github.com/ziadkadry99/writeguide/internal/render"
)

// DefaultNarrowWidth is the viewport width below which the sidebar collapses
// after a render.
const DefaultNarrowWidth = 100

// Phase is the state of the current selection.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseRendered
	PhaseRenderError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseRendered:
		return "rendered"
	case PhaseRenderError:
		return "render-error"
	default:
		return "unknown"
	}
}

// Screen is an immutable snapshot of everything the presentation layer shows.
type Screen struct {
	Nav []nav.Item
	// NavError replaces the navigation when the manifest failed to load.
	NavError     string
	View         render.View
	IntroVisible bool
	Phase        Phase
	// Selected is the id being fetched or shown, empty for no selection.
	Selected    string
	SidebarOpen bool
	Fragment    string
}

// Display receives a Screen after every applied intent. Show is called from
// the Run goroutine and must not call back into the controller synchronously.
type Display interface {
	Show(Screen)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(Screen)

func (f DisplayFunc) Show(s Screen) { f(s) }

// Options configure a Controller. Store and Display are required.
type Options struct {
	Store    content.Store
	History  History
	Viewport Viewport
	Display  Display
	Logger   *zap.Logger
	// NarrowWidth defaults to DefaultNarrowWidth.
	NarrowWidth int
	// DiscardStale drops fetch results that belong to an older selection.
	// When false, overlapping fetches race and the last one to finish wins.
	DiscardStale bool
}

type intent interface {
	apply(ctx context.Context, c *Controller) bool
}

// Controller is the single owner of browser state.
type Controller struct {
	store        content.Store
	history      History
	viewport     Viewport
	display      Display
	log          *zap.Logger
	narrowWidth  int
	discardStale bool

	intents chan intent
	done    chan struct{}
	fetches sync.WaitGroup
	runOnce sync.Once

	// Fields below are only touched by the Run goroutine.
	manifest       content.Manifest
	manifestFailed bool
	nav            *nav.Navigation
	screen         Screen
	token          uint64
}

// New creates a controller. Call Run to start it.
func New(opts Options) *Controller {
	if opts.History == nil {
		opts.History = NewMemoryHistory("")
	}
	if opts.NarrowWidth <= 0 {
		opts.NarrowWidth = DefaultNarrowWidth
	}
	return &Controller{
		store:        opts.Store,
		history:      opts.History,
		viewport:     opts.Viewport,
		display:      opts.Display,
		log:          logging.OrNop(opts.Logger),
		narrowWidth:  opts.NarrowWidth,
		discardStale: opts.DiscardStale,
		intents:      make(chan intent, 16),
		done:         make(chan struct{}),
		nav:          nav.Build(nil),
		screen:       Screen{SidebarOpen: true},
	}
}

// Run loads the manifest, resolves the initial fragment and then applies
// intents until ctx is cancelled. It returns ctx.Err(). Run may only be
// called once.
func (c *Controller) Run(ctx context.Context) error {
	started := false
	c.runOnce.Do(func() { started = true })
	if !started {
		return errors.New("browser: controller already run")
	}
	defer func() {
		close(c.done)
		c.fetches.Wait()
	}()

	c.load(ctx)
	c.publish()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in := <-c.intents:
			if in.apply(ctx, c) {
				c.publish()
			}
		}
	}
}

// Select is the navigation click action for id.
func (c *Controller) Select(id string) { c.send(selectIntent{id: id}) }

// FragmentChanged tells the controller the history's current entry changed,
// e.g. after back/forward navigation.
func (c *Controller) FragmentChanged() { c.send(fragmentIntent{}) }

// ToggleSidebar opens or closes the navigation sidebar.
func (c *Controller) ToggleSidebar() { c.send(toggleIntent{}) }

// send queues an intent. It drops the intent once Run has returned.
func (c *Controller) send(in intent) {
	select {
	case c.intents <- in:
	case <-c.done:
	}
}

func (c *Controller) publish() {
	if c.display == nil {
		return
	}
	s := c.screen
	s.Nav = c.nav.Items()
	s.Fragment = c.history.Fragment()
	c.display.Show(s)
}

// load is the startup sequence: fetch the manifest once, build navigation,
// resolve the initial fragment.
func (c *Controller) load(ctx context.Context) {
	m, err := c.store.Manifest(ctx)
	if err != nil {
		c.log.Error("failed to initialize app",
			zap.String("source", c.store.Source()),
			zap.Error(err))
		c.manifestFailed = true
		c.nav.Rebuild(nil)
		c.screen.NavError = render.NavigationError
		c.screen.View = render.ManifestFailed()
		c.screen.IntroVisible = true
		c.screen.Phase = PhaseIdle
		return
	}

	c.manifest = m
	c.nav.Rebuild(m)
	c.log.Debug("manifest loaded",
		zap.String("source", c.store.Source()),
		zap.Int("entries", len(m)))

	c.resolve(ctx)
	if len(m) == 0 {
		c.screen.View = render.ManifestEmpty()
		c.screen.IntroVisible = true
	}
}

// resolve maps the current fragment to a selection. Unknown or empty
// fragments fall back to the introduction and are stripped from the location.
func (c *Controller) resolve(ctx context.Context) {
	if c.manifestFailed {
		return
	}
	frag := ParseFragment(c.history.Fragment())
	if frag != "" && c.manifest.Contains(frag) {
		c.nav.Activate(frag)
		c.fetch(ctx, frag)
		return
	}

	if frag != "" {
		c.log.Debug("ignoring unknown fragment", zap.String("fragment", frag))
	}
	// A newer selection of nothing invalidates any fetch still in flight.
	c.token++
	c.nav.Deactivate()
	c.screen.View = render.Intro()
	c.screen.IntroVisible = true
	c.screen.Phase = PhaseIdle
	c.screen.Selected = ""
	if err := c.history.Replace(""); err != nil {
		c.log.Warn("could not replace state in history", zap.Error(err))
	}
}

// choose handles a navigation click.
func (c *Controller) choose(ctx context.Context, id string) {
	if !c.manifest.Contains(id) {
		c.log.Warn("selection not in manifest", zap.String("id", id))
		c.token++
		c.nav.Deactivate()
		c.screen.View = render.NotInManifest(id)
		c.screen.IntroVisible = true
		c.screen.Phase = PhaseRenderError
		c.screen.Selected = ""
		return
	}

	c.nav.Activate(id)
	c.fetch(ctx, id)
	if err := c.history.Push(id); err != nil {
		c.log.Warn("could not push state to history", zap.String("id", id), zap.Error(err))
	}
}

// fetch starts loading id. The result comes back as a fetchedIntent.
func (c *Controller) fetch(ctx context.Context, id string) {
	c.token++
	token := c.token
	c.screen.Phase = PhaseFetching
	c.screen.Selected = id
	c.screen.IntroVisible = false

	c.fetches.Add(1)
	go func() {
		defer c.fetches.Done()
		p, err := c.store.Point(ctx, id)
		c.send(fetchedIntent{token: token, id: id, point: p, err: err})
	}()
}

func (c *Controller) finish(f fetchedIntent) bool {
	if c.discardStale && f.token != c.token {
		c.log.Debug("discarding stale content",
			zap.String("id", f.id),
			zap.Uint64("token", f.token),
			zap.Uint64("current", c.token))
		return false
	}

	c.screen.Selected = f.id
	if f.err != nil {
		c.log.Error("could not load content", zap.String("id", f.id), zap.Error(f.err))
		c.screen.View = render.ContentError(f.id)
		c.screen.IntroVisible = true
		c.screen.Phase = PhaseRenderError
		return true
	}

	c.screen.View = render.Point(f.point)
	c.screen.IntroVisible = false
	c.screen.Phase = PhaseRendered
	// Width is sampled once, after the content is in place.
	if c.viewport != nil && c.viewport.Width() < c.narrowWidth {
		c.screen.SidebarOpen = false
	}
	return true
}

type selectIntent struct{ id string }

func (in selectIntent) apply(ctx context.Context, c *Controller) bool {
	c.choose(ctx, in.id)
	return true
}

type fragmentIntent struct{}

func (fragmentIntent) apply(ctx context.Context, c *Controller) bool {
	c.resolve(ctx)
	return true
}

type toggleIntent struct{}

func (toggleIntent) apply(_ context.Context, c *Controller) bool {
	c.screen.SidebarOpen = !c.screen.SidebarOpen
	return true
}

type fetchedIntent struct {
	token uint64
	id    string
	point content.Point
	err   error
}

func (in fetchedIntent) apply(_ context.Context, c *Controller) bool {
	return c.finish(in)
}

// Snapshot runs a controller until the startup selection settles and returns
// the resulting screen. It is the one-shot form of Run.
func Snapshot(ctx context.Context, opts Options) (Screen, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screens := make(chan Screen)
	opts.Display = DisplayFunc(func(s Screen) {
		select {
		case screens <- s:
		case <-ctx.Done():
		}
	})

	c := New(opts)
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	for {
		select {
		case s := <-screens:
			if s.Phase == PhaseFetching {
				continue
			}
			cancel()
			<-errCh
			return s, nil
		case <-ctx.Done():
			<-errCh
			return Screen{}, ctx.Err()
		}
	}
}
