// The GRACE gallery client: a desktop viewer for a church content
// library. It shows an infinitely scrolling card strip of sermons and
// studies, a detail view with video/PDF/link tabs, per-item notes, the
// concept card browser, the news feed, and the setlist planner.
//
// Run with a library directory containing library.yaml:
//
//	go run ./example/ -library ./library
//
// The library reloads live when its YAML files change. With -feed the
// client also subscribes to a websocket news feed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	grace "github.com/eunyuson/GRACE-sub000"
	"github.com/eunyuson/GRACE-sub000/backend/opengl"
	"github.com/eunyuson/GRACE-sub000/content"
	"github.com/eunyuson/GRACE-sub000/realtime"
)

const (
	windowWidth  = 1280
	windowHeight = 800
	windowTitle  = "GRACE"
)

// sidePanel selects which panel occupies the right column.
type sidePanel int

const (
	panelNews sidePanel = iota
	panelConcepts
	panelSetlist
	panelSearch
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	libraryDir := flag.String("library", "library", "library directory containing library.yaml")
	feedURL := flag.String("feed", "", "websocket news feed URL (optional)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		grace.SetLogLevel(slog.LevelDebug)
	}

	if err := run(*libraryDir, *feedURL); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(libraryDir, feedURL string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	ui := grace.New(renderer, grace.WithStyle(grace.SanctuaryStyle()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := newApp(renderer, libraryDir)
	if err != nil {
		return err
	}

	// Library reloads arrive on a channel; fsnotify runs off-thread and
	// the UI applies the new library between frames.
	reloads := make(chan *content.Library, 1)
	watcher := content.NewWatcher(libraryDir, func(lib *content.Library) {
		select {
		case reloads <- lib:
		default:
		}
	})
	go watcher.Run(ctx)

	var feedEvents <-chan realtime.Event
	if feedURL != "" {
		client := realtime.NewClient(feedURL)
		feedEvents = client.Events()
		go client.Run(ctx)
	}

	lastTime := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		select {
		case lib := <-reloads:
			app.applyLibrary(lib)
			app.toasts.ToastInfo("Library reloaded")
		default:
		}
		if feedEvents != nil {
			drainFeed(feedEvents, app)
		}

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.09, 0.08, 0.07, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := grace.Vec2{X: float32(w), Y: float32(h)}
		uictx := ui.Begin(input, displaySize, dt)
		app.frame(uictx, displaySize, dt)
		if err := ui.End(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	app.memo.Flush()
	return nil
}

// drainFeed applies every pending feed event without blocking the frame.
func drainFeed(events <-chan realtime.Event, app *app) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			app.handleFeedEvent(ev)
		default:
			return
		}
	}
}

// app owns all UI state and the loaded library.
type app struct {
	renderer *opengl.Renderer

	library    *content.Library
	memoStore  *content.MemoStore
	thumbnails map[string]uint32 // Item ID to texture ID

	strip    *grace.GalleryStrip
	detail   *grace.DetailView
	memo     *grace.MemoPanel
	feed     *grace.NewsFeed
	concepts *grace.ConceptPanel
	planner  *grace.SetlistPlanner
	search   *grace.SearchPanel
	toasts   *grace.ToastState

	side sidePanel
}

func newApp(renderer *opengl.Renderer, libraryDir string) (*app, error) {
	lib, err := content.Load(libraryDir)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}

	memoStore, err := content.NewMemoStore(libraryDir)
	if err != nil {
		return nil, fmt.Errorf("memo store: %w", err)
	}
	setlistStore, err := content.NewSetlistStore(libraryDir)
	if err != nil {
		return nil, fmt.Errorf("setlist store: %w", err)
	}

	a := &app{
		renderer:   renderer,
		memoStore:  memoStore,
		thumbnails: make(map[string]uint32),
		strip:      grace.NewGalleryStrip(),
		feed:       grace.NewNewsFeed(),
		concepts:   grace.NewConceptPanel(),
		search:     grace.NewSearchPanel(),
		toasts:     &grace.ToastState{},
	}
	a.detail = grace.NewDetailView(a.strip.Carousel)
	a.detail.OpenLink = openInBrowser

	a.memo = grace.NewMemoPanel(memoStore)
	a.memo.OnSaved = func(itemID string) {
		a.toasts.ToastSuccess("Notes saved")
	}

	a.planner = grace.NewSetlistPlanner(setlistStore)
	a.planner.OnSaved = func(name string) {
		a.toasts.ToastSuccess("Setlist saved: " + name)
	}
	if err := a.planner.Load(); err != nil {
		slog.Warn("setlist load failed", "err", err)
	}

	a.search.OnSelect = func(itemID string) {
		for i, it := range a.library.Items {
			if it.ID == itemID {
				a.strip.Carousel.NavigateTo(i)
				break
			}
		}
	}

	a.applyLibrary(lib)
	return a, nil
}

// applyLibrary swaps in a new library and refreshes every panel.
func (a *app) applyLibrary(lib *content.Library) {
	a.library = lib

	items := make([]grace.DisplayItem, len(lib.Items))
	for i, it := range lib.Items {
		items[i] = grace.DisplayItem{
			Key:       it.ID,
			Title:     it.Title,
			Subtitle:  it.Speaker,
			TextureID: a.thumbnailFor(it),
		}
	}
	a.strip.SetItems(items)

	posts := make([]content.NewsPost, 0, len(lib.News))
	for _, p := range lib.News {
		posts = append(posts, *p)
	}
	a.feed.SetPosts(posts)
	a.concepts.SetCards(lib.Concepts)
	a.planner.SetSongs(lib.Songs)
	a.search.SetItems(lib.Items)

	if a.detail.IsOpen() {
		// The open item may have changed or vanished
		if it := lib.ItemByID(a.detail.Item().ID); it != nil {
			a.detail.Open(it)
		} else {
			a.detail.Close()
		}
	}
}

// thumbnailFor uploads an item's thumbnail once and caches the texture.
func (a *app) thumbnailFor(it *content.Item) uint32 {
	if it.Thumbnail == "" {
		return 0
	}
	if tex, ok := a.thumbnails[it.ID]; ok {
		return tex
	}
	tex, err := a.renderer.LoadTextureFile(a.library.ThumbnailPath(it))
	if err != nil {
		slog.Warn("thumbnail load failed", "item", it.ID, "err", err)
		a.thumbnails[it.ID] = 0
		return 0
	}
	a.thumbnails[it.ID] = tex
	return tex
}

func (a *app) handleFeedEvent(ev realtime.Event) {
	switch ev.Type {
	case realtime.EventNewsPost:
		if ev.Post != nil {
			a.feed.AddPost(*ev.Post, a.toasts)
		}
	case realtime.EventLibraryUpdate:
		a.toasts.ToastInfo("Library update published")
	}
}

// frame lays out and draws one full frame.
func (a *app) frame(ctx *grace.Context, displaySize grace.Vec2, dt float32) {
	const sideWidth = 360
	const memoHeight = 180

	stripBounds := grace.Rect{
		X: 0,
		Y: 60,
		W: displaySize.X - sideWidth,
		H: displaySize.Y - memoHeight - 60,
	}
	memoBounds := grace.Rect{
		X: 0,
		Y: displaySize.Y - memoHeight,
		W: displaySize.X - sideWidth,
		H: memoHeight,
	}
	sideBounds := grace.Rect{
		X: displaySize.X - sideWidth,
		Y: 0,
		W: sideWidth,
		H: displaySize.Y,
	}

	a.drawTopBar(ctx)

	a.strip.InputBlocked = a.detail.IsOpen()
	ev := a.strip.Draw(ctx, stripBounds)
	if ev.ClickedOpen && !a.detail.IsOpen() {
		if idx := ev.ClickedIndex; idx >= 0 && idx < len(a.library.Items) {
			it := a.library.Items[idx]
			a.detail.Open(it)
			// With the concept panel visible, jump it to the card
			// annotating the opened item
			if a.side == panelConcepts {
				if cards := a.concepts.CardsForItem(it.ID); len(cards) > 0 {
					a.concepts.Show(cards[0].ID)
				}
			}
		}
	}
	if ev.Settled && ev.ActiveIndex >= 0 && ev.ActiveIndex < len(a.library.Items) {
		a.syncMemo(a.library.Items[ev.ActiveIndex].ID)
	}

	if a.detail.IsOpen() {
		a.detail.Draw(ctx, stripBounds)
	}

	a.memo.Draw(ctx, memoBounds)

	switch a.side {
	case panelNews:
		a.feed.Draw(ctx, sideBounds)
	case panelConcepts:
		a.concepts.Draw(ctx, sideBounds)
	case panelSetlist:
		a.planner.Draw(ctx, sideBounds)
	case panelSearch:
		a.search.Draw(ctx, sideBounds)
	}

	a.toasts.Update(dt)
	ctx.DrawToasts(a.toasts)
}

func (a *app) drawTopBar(ctx *grace.Context) {
	ctx.SetCursorPos(12, 12)
	ctx.Horizontal(grace.Gap(8))(func() {
		tabs := []struct {
			label string
			panel sidePanel
		}{
			{"News", panelNews},
			{"Concepts", panelConcepts},
			{"Setlists", panelSetlist},
			{"Search", panelSearch},
		}
		for _, tab := range tabs {
			label := tab.label
			if tab.panel == panelNews {
				if n := a.feed.UnreadCount(); n > 0 {
					label = fmt.Sprintf("%s (%d)", tab.label, n)
				}
			}
			if ctx.Button(label, grace.WithID("side-"+tab.label)) {
				a.side = tab.panel
			}
		}
	})
}

// syncMemo points the memo panel at the centered item, loading its notes
// on first visit.
func (a *app) syncMemo(itemID string) {
	if a.memo.ItemID() == itemID {
		return
	}
	text, err := a.memoStore.LoadMemo(itemID)
	if err != nil {
		slog.Warn("memo load failed", "item", itemID, "err", err)
		text = ""
	}
	a.memo.SetItem(itemID, text)
}

func openInBrowser(url string) error {
	return exec.Command("xdg-open", url).Start()
}
