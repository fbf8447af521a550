package grace

import (
	"sort"
	"strconv"

	"github.com/eunyuson/GRACE-sub000/content"
)

// NewsFeed shows community announcements, newest first. Posts arriving
// over the realtime feed raise a toast and an unread badge until the
// reader expands them.
type NewsFeed struct {
	posts    []content.NewsPost
	read     map[string]bool
	expanded string
}

// NewNewsFeed creates an empty feed.
func NewNewsFeed() *NewsFeed {
	return &NewsFeed{read: make(map[string]bool)}
}

// SetPosts replaces the feed contents, typically after a library load.
// Posts already marked read stay read. Posts sort newest first.
func (f *NewsFeed) SetPosts(posts []content.NewsPost) {
	f.posts = make([]content.NewsPost, len(posts))
	copy(f.posts, posts)
	f.sortPosts()
}

// AddPost inserts a post arriving over the realtime feed. Duplicates by
// ID update in place without re-raising a notification. New posts raise
// a toast when a toast queue is supplied.
func (f *NewsFeed) AddPost(post content.NewsPost, toasts *ToastState) {
	for i := range f.posts {
		if f.posts[i].ID == post.ID {
			f.posts[i] = post
			f.sortPosts()
			return
		}
	}
	f.posts = append(f.posts, post)
	f.sortPosts()
	if toasts != nil {
		toasts.ToastInfo("News: " + post.Title)
	}
}

func (f *NewsFeed) sortPosts() {
	sort.SliceStable(f.posts, func(i, j int) bool {
		return f.posts[i].PostedAt.After(f.posts[j].PostedAt)
	})
}

// Posts returns the feed contents, newest first.
func (f *NewsFeed) Posts() []content.NewsPost {
	return f.posts
}

// UnreadCount returns how many posts have not been expanded yet.
func (f *NewsFeed) UnreadCount() int {
	n := 0
	for _, p := range f.posts {
		if !f.read[p.ID] {
			n++
		}
	}
	return n
}

// MarkRead marks a single post as read.
func (f *NewsFeed) MarkRead(id string) {
	f.read[id] = true
}

// Expanded returns the ID of the expanded post, or "".
func (f *NewsFeed) Expanded() string {
	return f.expanded
}

// Draw renders the feed panel into bounds.
func (f *NewsFeed) Draw(ctx *Context, bounds Rect) {
	style := ctx.Style()
	dl := ctx.DrawList

	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.PanelColor)
	dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, style.PanelBorderColor, style.BorderSize)

	header := "News"
	if n := f.UnreadCount(); n > 0 {
		header = "News [" + strconv.Itoa(n) + "]"
	}
	headerColor := style.PanelHeaderTextColor
	if headerColor == 0 {
		headerColor = style.TextColor
	}
	ctx.addText(bounds.X+style.PanelPadding, bounds.Y+style.PanelPadding, header, headerColor)

	listTop := bounds.Y + style.PanelPadding + ctx.lineHeight() + SpaceSM
	list := Rect{
		X: bounds.X + style.PanelPadding,
		Y: listTop,
		W: bounds.W - style.PanelPadding*2,
		H: bounds.Y + bounds.H - listTop - style.PanelPadding,
	}

	scroll := scrollStates.Get(ctx.GetID("news-feed"))
	if ctx.Input != nil && ctx.isHovered(list) && !ctx.HasActive() {
		if wheel := ctx.Input.MouseWheelY; wheel != 0 {
			scroll.TargetScrollY -= wheel * ctx.lineHeight() * 3
			ctx.WantCaptureMouse = true
		}
	}
	scroll.UpdateSmooth(ctx.DeltaTime)

	dl.PushClipRect(list.X, list.Y, list.X+list.W, list.Y+list.H)
	defer dl.PopClipRect()

	ctx.SetCursorPos(list.X, list.Y-scroll.ScrollY)
	area := ctx.Vertical(Gap(SpaceSM))(func() {
		if len(f.posts) == 0 {
			ctx.TextDisabled("No announcements")
			return
		}
		for _, post := range f.posts {
			f.drawPost(ctx, post, list.W)
		}
	})

	scroll.ContentHeight = area.H
	scroll.TargetScrollY = clampScroll(scroll.TargetScrollY, area.H, list.H)
}

func (f *NewsFeed) drawPost(ctx *Context, post content.NewsPost, width float32) {
	opts := []Option{WithID("news-" + post.ID), WithWidth(width)}
	if !f.read[post.ID] {
		opts = append(opts, WithBadge("NEW"))
	}

	expanded := f.expanded == post.ID
	if ctx.Selectable(post.Title, expanded, opts...) {
		if expanded {
			f.expanded = ""
		} else {
			f.expanded = post.ID
			f.read[post.ID] = true
		}
	}

	if !expanded {
		return
	}

	byline := post.PostedAt.Format("Jan 2, 2006")
	if post.Author != "" {
		byline += "  " + post.Author
	}
	ctx.TextDisabled(byline)
	ctx.TextWrapped(post.Body, width)
	ctx.Spacing(SpaceSM)
}
