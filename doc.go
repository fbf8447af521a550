// Package grace implements the GRACE desktop client UI: an immediate-mode
// interface for browsing a church content library.
//
// The centerpiece is the Carousel, an infinitely scrolling card strip.
// Items replicate five times along a virtual axis and the scroll offset
// wraps inside a fixed window, so the strip never hits an edge in either
// direction. Each frame the offset eases toward its target by a constant
// fraction, which gives wheel flicks, drags and programmatic navigation
// the same glide. GalleryStrip wraps the carousel with card rendering,
// parallax and input handling.
//
// Around the strip sit the content panels: DetailView overlays the strip
// with video, PDF and link tabs for one item; MemoPanel edits per-item
// notes with undo and debounced autosave; NewsFeed lists announcements
// with unread tracking; ConceptPanel browses linked teaching cards;
// SetlistPlanner assembles ordered song lists; SearchPanel filters the
// library by text and tag facets.
//
// The UI follows the immediate-mode model. Each frame the application
// calls Begin, draws every visible panel through the returned Context,
// and calls End to flush the batched DrawList to a Renderer. Scroll
// positions live in a FrameStore registry keyed by widget ID and are
// forgotten when their widget stops drawing; editor buffers belong to
// their panels, since notes must survive panel visibility and be
// flushable on exit.
//
// Rendering and window plumbing live in backend/opengl. Library data
// loading, persistence and file watching live in content. The websocket
// news client lives in realtime. See example/main.go for a complete
// application wiring all of it together.
package grace
