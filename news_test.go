package grace_test

import (
	"fmt"
	"testing"
	"time"

	grace "github.com/eunyuson/GRACE-sub000"
	"github.com/eunyuson/GRACE-sub000/content"
)

func newsPost(id, title string, age time.Duration) content.NewsPost {
	return content.NewsPost{
		ID:       id,
		Title:    title,
		Body:     "Details for " + title,
		PostedAt: time.Now().Add(-age),
	}
}

func TestNewsFeedSortsNewestFirst(t *testing.T) {
	feed := grace.NewNewsFeed()
	feed.SetPosts([]content.NewsPost{
		newsPost("old", "Old", 48*time.Hour),
		newsPost("new", "New", time.Hour),
		newsPost("mid", "Mid", 24*time.Hour),
	})

	posts := feed.Posts()
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].ID != "new" || posts[1].ID != "mid" || posts[2].ID != "old" {
		t.Errorf("wrong order: %s, %s, %s", posts[0].ID, posts[1].ID, posts[2].ID)
	}
}

func TestNewsFeedAddPostRaisesToast(t *testing.T) {
	feed := grace.NewNewsFeed()
	toasts := &grace.ToastState{}

	feed.AddPost(newsPost("n1", "Potluck Sunday", time.Minute), toasts)

	if len(toasts.Toasts) != 1 {
		t.Fatalf("expected 1 toast, got %d", len(toasts.Toasts))
	}
	if toasts.Toasts[0].Message != "News: Potluck Sunday" {
		t.Errorf("unexpected toast message %q", toasts.Toasts[0].Message)
	}
	if feed.UnreadCount() != 1 {
		t.Errorf("expected 1 unread, got %d", feed.UnreadCount())
	}
}

func TestNewsFeedAddPostDeduplicates(t *testing.T) {
	feed := grace.NewNewsFeed()
	toasts := &grace.ToastState{}

	feed.AddPost(newsPost("n1", "First title", time.Minute), toasts)
	feed.AddPost(newsPost("n1", "Edited title", time.Minute), toasts)

	if len(feed.Posts()) != 1 {
		t.Fatalf("expected 1 post after duplicate, got %d", len(feed.Posts()))
	}
	if feed.Posts()[0].Title != "Edited title" {
		t.Errorf("duplicate should update in place, got %q", feed.Posts()[0].Title)
	}
	if len(toasts.Toasts) != 1 {
		t.Errorf("duplicate should not re-toast, got %d toasts", len(toasts.Toasts))
	}
}

func TestNewsFeedMarkRead(t *testing.T) {
	feed := grace.NewNewsFeed()
	feed.SetPosts([]content.NewsPost{
		newsPost("a", "A", time.Hour),
		newsPost("b", "B", 2*time.Hour),
	})

	if feed.UnreadCount() != 2 {
		t.Fatalf("expected 2 unread, got %d", feed.UnreadCount())
	}
	feed.MarkRead("a")
	if feed.UnreadCount() != 1 {
		t.Errorf("expected 1 unread after MarkRead, got %d", feed.UnreadCount())
	}
}

func TestNewsFeedClickExpandsAndMarksRead(t *testing.T) {
	ui := grace.New(&mockRenderer{})
	input := grace.NewInputState()
	feed := grace.NewNewsFeed()
	feed.SetPosts([]content.NewsPost{newsPost("a", "Retreat", time.Hour)})

	bounds := grace.Rect{X: 0, Y: 0, W: 400, H: 300}

	// Default style: header line at y=8, list starts at 8+8+4=20.
	// The first selectable row spans y=20..28.
	input.SetMousePos(50, 24)
	input.SetMouseButton(grace.MouseButtonLeft, true)

	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	feed.Draw(ctx, bounds)
	_ = ui.End()

	if feed.Expanded() != "a" {
		t.Errorf("click should expand the post, expanded=%q", feed.Expanded())
	}
	if feed.UnreadCount() != 0 {
		t.Errorf("expanding should mark the post read, unread=%d", feed.UnreadCount())
	}
}

func TestNewsFeedScrollPersistsAndResets(t *testing.T) {
	ui := grace.New(&mockRenderer{})
	input := grace.NewInputState()
	feed := grace.NewNewsFeed()

	posts := make([]content.NewsPost, 30)
	for i := range posts {
		id := fmt.Sprintf("p%02d", i)
		posts[i] = newsPost(id, "Post "+id, time.Duration(i)*time.Hour)
	}
	feed.SetPosts(posts)

	bounds := grace.Rect{X: 0, Y: 0, W: 400, H: 300}
	frame := func() {
		ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
		feed.Draw(ctx, bounds)
		_ = ui.End()
	}

	// One wheel notch over the list scrolls three lines (24px, two rows)
	input.SetMousePos(50, 100)
	input.SetMouseWheel(0, -1)
	frame()
	input.Reset()
	for i := 0; i < 30; i++ { // let the smooth scroll settle
		frame()
	}

	// Rows are 12px apart, so the row at y=20..28 is now the third post
	input.SetMousePos(50, 24)
	input.SetMouseButton(grace.MouseButtonLeft, true)
	frame()
	if feed.Expanded() != "p02" {
		t.Fatalf("click after scrolling should hit the third post, expanded=%q", feed.Expanded())
	}

	input.Reset()
	input.SetMouseButton(grace.MouseButtonLeft, false)
	frame()

	// Skip drawing the feed for two frames: its scroll position is
	// forgotten and the list snaps back to the top.
	for i := 0; i < 2; i++ {
		ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
		_ = ui.End()
	}

	input.Reset()
	input.SetMousePos(50, 24)
	input.SetMouseButton(grace.MouseButtonLeft, true)
	frame()
	if feed.Expanded() != "p00" {
		t.Errorf("redrawn feed should start at the top, expanded=%q", feed.Expanded())
	}
}

func TestNewsFeedDrawEmpty(t *testing.T) {
	ui := grace.New(&mockRenderer{})
	input := grace.NewInputState()
	feed := grace.NewNewsFeed()

	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	feed.Draw(ctx, grace.Rect{X: 0, Y: 0, W: 400, H: 300})
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
}
