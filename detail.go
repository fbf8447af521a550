package grace

import (
	"fmt"

	"github.com/eunyuson/GRACE-sub000/content"
)

// VideoPlacement selects where the video surface is drawn in the detail view.
type VideoPlacement int

const (
	// VideoInline fills the detail content area.
	VideoInline VideoPlacement = iota
	// VideoMini docks a small player in the corner so the video keeps
	// playing while another tab is shown.
	VideoMini
)

// Mini player dimensions relative to the detail bounds.
const (
	miniPlayerWidth  float32 = 240
	miniPlayerHeight float32 = 135
	miniPlayerMargin float32 = SpaceXL
	miniPlayerClose  float32 = 14 // close control square in the chip corner
)

// DetailView shows one library item: header, media tabs, and the media
// surface for the selected tab. While open it suspends the gallery
// carousel so scroll input is not consumed behind it.
type DetailView struct {
	item      *content.Item
	tab       content.MediaKind
	placement VideoPlacement
	carousel  *Carousel
	open      bool

	// PDF viewer state. Page count comes from the application once the
	// document is decoded; 0 means unknown.
	PDFPage  int
	PDFPages int

	// VideoTextureID is the streaming texture the application uploads
	// decoded video frames into. 0 draws a placeholder surface.
	VideoTextureID uint32

	// OpenLink is called when the user activates the link tab's action.
	// Nil disables the button.
	OpenLink func(url string) error

	// OnVideoStop is called when the user closes the mini player, so the
	// application can halt decoding. Optional.
	OnVideoStop func()
}

// NewDetailView creates a closed detail view bound to a carousel.
func NewDetailView(carousel *Carousel) *DetailView {
	return &DetailView{carousel: carousel}
}

// Open shows the item and suspends the carousel. The initial tab is the
// item's default medium and the video starts inline.
func (v *DetailView) Open(item *content.Item) {
	if item == nil {
		return
	}
	v.item = item
	v.tab = item.DefaultKind()
	v.placement = VideoInline
	v.PDFPage = 1
	if !v.open {
		v.open = true
		if v.carousel != nil {
			v.carousel.Suspend()
		}
	}
	uiLogger.Debug("detail opened", "item", item.ID, "tab", kindLabel(v.tab))
}

// Close hides the view and resumes the carousel.
func (v *DetailView) Close() {
	if !v.open {
		return
	}
	v.open = false
	v.item = nil
	if v.carousel != nil {
		v.carousel.Resume()
	}
}

// IsOpen reports whether the view is showing an item.
func (v *DetailView) IsOpen() bool {
	return v.open
}

// Item returns the item currently shown, or nil.
func (v *DetailView) Item() *content.Item {
	return v.item
}

// Tab returns the selected media tab.
func (v *DetailView) Tab() content.MediaKind {
	return v.tab
}

// SetTab switches to a medium the item actually has. Switching away from
// the video tab docks the player to the corner; switching back restores
// it inline.
func (v *DetailView) SetTab(kind content.MediaKind) {
	if v.item == nil || !v.item.HasKind(kind) || kind == v.tab {
		return
	}
	if v.tab == content.KindVideo && v.item.HasKind(content.KindVideo) {
		v.placement = VideoMini
	}
	if kind == content.KindVideo {
		v.placement = VideoInline
	}
	v.tab = kind
}

// Placement returns where the video surface is currently drawn.
func (v *DetailView) Placement() VideoPlacement {
	return v.placement
}

// StopVideo closes the docked mini player and stops playback: the video
// surface clears and OnVideoStop fires so the application halts decoding.
// The video tab stays available; selecting it restarts playback inline.
func (v *DetailView) StopVideo() {
	v.placement = VideoInline
	v.VideoTextureID = 0
	if v.OnVideoStop != nil {
		v.OnVideoStop()
	}
	if v.item != nil {
		uiLogger.Debug("video stopped", "item", v.item.ID)
	}
}

// Draw renders the detail view into bounds and handles its input.
// Does nothing while closed.
func (v *DetailView) Draw(ctx *Context, bounds Rect) {
	if !v.open || v.item == nil {
		return
	}

	if ctx.Input != nil && ctx.Input.KeyPressed(KeyEscape) && !ctx.HasWidgetFocus() {
		v.Close()
		return
	}

	style := ctx.Style()
	dl := ctx.DrawList

	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.PanelColor)
	dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, style.PanelBorderColor, style.BorderSize)

	dl.PushClipRect(bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H)
	defer dl.PopClipRect()

	ctx.SetCursorPos(bounds.X+style.PanelPadding, bounds.Y+style.PanelPadding)
	ctx.Vertical()(func() {
		v.drawHeader(ctx, bounds)
		ctx.Spacing(SpaceSM)
		v.drawTabs(ctx, bounds)
		ctx.Spacing(SpaceMD)
		v.drawContent(ctx, bounds)
	})

	if v.placement == VideoMini && v.tab != content.KindVideo && v.item.HasKind(content.KindVideo) {
		v.drawMiniPlayer(ctx, bounds)
	}
}

func (v *DetailView) drawHeader(ctx *Context, bounds Rect) {
	style := ctx.Style()
	ctx.Horizontal()(func() {
		ctx.TextColored(v.item.Title, style.TextHighlightColor)
		if v.item.Speaker != "" {
			ctx.TextDisabled(v.item.Speaker)
		}
		if v.item.Date != "" {
			ctx.TextDisabled(v.item.Date)
		}
	})
	if ctx.SmallButton("Close", WithID("detail-close")) {
		v.Close()
	}
}

func (v *DetailView) drawTabs(ctx *Context, bounds Rect) {
	style := ctx.Style()
	ctx.Horizontal(Gap(SpaceSM))(func() {
		for _, kind := range []content.MediaKind{content.KindVideo, content.KindPDF, content.KindLink} {
			if !v.item.HasKind(kind) {
				continue
			}
			label := kindLabel(kind)
			active := kind == v.tab

			pos := ctx.ItemPos()
			textSize := ctx.MeasureText(label)
			w := textSize.X + style.ButtonPadding*2
			h := textSize.Y + style.ButtonPadding*2
			rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

			bg := style.TabBgColor
			fg := style.TabTextColor
			if active {
				bg = style.TabActiveColor
				fg = style.TabActiveText
			} else if ctx.isHovered(rect) && !ctx.HasActive() {
				bg = style.ButtonHoveredColor
			}

			ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bg)
			ctx.addText(pos.X+style.ButtonPadding, pos.Y+style.ButtonPadding, label, fg)
			if active && style.TabUnderlineSize > 0 {
				ctx.DrawList.AddRect(pos.X, pos.Y+h-style.TabUnderlineSize, w,
					style.TabUnderlineSize, style.TextHighlightColor)
			}

			if !ctx.HasActive() && ctx.isClicked(rect) {
				v.SetTab(kind)
			}
			ctx.advanceCursor(Vec2{w, h})
		}
	})
}

func (v *DetailView) drawContent(ctx *Context, bounds Rect) {
	switch v.tab {
	case content.KindVideo:
		v.drawVideo(ctx, bounds)
	case content.KindPDF:
		v.drawPDF(ctx, bounds)
	case content.KindLink:
		v.drawLink(ctx)
	}
}

// contentArea returns the rect below the cursor available for media.
func (v *DetailView) contentArea(ctx *Context, bounds Rect) Rect {
	style := ctx.Style()
	top := ctx.GetCursorPos().Y
	return Rect{
		X: bounds.X + style.PanelPadding,
		Y: top,
		W: bounds.W - style.PanelPadding*2,
		H: bounds.Y + bounds.H - top - style.PanelPadding,
	}
}

func (v *DetailView) drawVideo(ctx *Context, bounds Rect) {
	area := v.contentArea(ctx, bounds)
	if area.H <= 0 {
		return
	}
	v.drawVideoSurface(ctx, ctx.DrawList, area)
}

// drawVideoSurface draws the video texture letterboxed to 16:9, or a dark
// placeholder when no frame has been uploaded yet.
func (v *DetailView) drawVideoSurface(ctx *Context, dl *DrawList, area Rect) {
	dl.AddRect(area.X, area.Y, area.W, area.H, RGBA(10, 10, 12, 255))

	w := area.W
	h := w * 9 / 16
	if h > area.H {
		h = area.H
		w = h * 16 / 9
	}
	x := area.X + (area.W-w)/2
	y := area.Y + (area.H-h)/2

	if v.VideoTextureID != 0 {
		dl.AddImage(v.VideoTextureID, x, y, w, h, ColorWhite)
	} else {
		dl.AddRect(x, y, w, h, RGBA(24, 24, 28, 255))
		label := "Loading " + v.item.VideoURL
		size := ctx.MeasureText(label)
		ctx.AddTextTo(dl, x+(w-size.X)/2, y+(h-size.Y)/2, label, ctx.Style().TextDisabledColor)
	}
}

func (v *DetailView) drawPDF(ctx *Context, bounds Rect) {
	style := ctx.Style()
	ctx.Horizontal(Gap(SpaceSM))(func() {
		if ctx.SmallButton("<", WithID("pdf-prev"), WithDisabled(v.PDFPage <= 1)) {
			v.PDFPage--
		}
		readout := fmt.Sprintf("Page %d", v.PDFPage)
		if v.PDFPages > 0 {
			readout = fmt.Sprintf("Page %d / %d", v.PDFPage, v.PDFPages)
		}
		ctx.Text(readout)
		atEnd := v.PDFPages > 0 && v.PDFPage >= v.PDFPages
		if ctx.SmallButton(">", WithID("pdf-next"), WithDisabled(atEnd)) {
			v.PDFPage++
		}
	})
	ctx.Spacing(SpaceSM)

	area := v.contentArea(ctx, bounds)
	if area.H <= 0 {
		return
	}
	// Page surface; the application renders decoded pages on top of it
	ctx.DrawList.AddRect(area.X, area.Y, area.W, area.H, RGBA(240, 237, 228, 255))
	ctx.AddTextTo(ctx.DrawList, area.X+style.PanelPadding, area.Y+style.PanelPadding,
		v.item.PDFPath, RGBA(60, 60, 60, 255))
}

func (v *DetailView) drawLink(ctx *Context) {
	ctx.Text(v.item.LinkURL)
	ctx.Spacing(SpaceSM)
	if ctx.Button("Open in browser", WithID("open-link"), WithDisabled(v.OpenLink == nil)) {
		if err := v.OpenLink(v.item.LinkURL); err != nil {
			uiLogger.Warn("open link failed", "url", v.item.LinkURL, "err", err)
		}
	}
}

// drawMiniPlayer docks the video in the bottom-right corner, drawn on the
// foreground layer so it stays above the tab content.
func (v *DetailView) drawMiniPlayer(ctx *Context, bounds Rect) {
	dl := ctx.ForegroundDrawList
	if dl == nil {
		dl = ctx.DrawList
	}

	area := Rect{
		X: bounds.X + bounds.W - miniPlayerWidth - miniPlayerMargin,
		Y: bounds.Y + bounds.H - miniPlayerHeight - miniPlayerMargin,
		W: miniPlayerWidth,
		H: miniPlayerHeight,
	}

	v.drawVideoSurface(ctx, dl, area)
	style := ctx.Style()
	dl.AddRectOutline(area.X, area.Y, area.W, area.H, style.PanelBorderColor, 1)

	closeRect := Rect{
		X: area.X + area.W - miniPlayerClose,
		Y: area.Y,
		W: miniPlayerClose,
		H: miniPlayerClose,
	}
	closeBg := style.ButtonColor
	if ctx.isHovered(closeRect) && !ctx.HasActive() {
		closeBg = style.ButtonHoveredColor
	}
	dl.AddRect(closeRect.X, closeRect.Y, closeRect.W, closeRect.H, closeBg)
	closeSize := ctx.MeasureText("x")
	ctx.AddTextTo(dl, closeRect.X+(closeRect.W-closeSize.X)/2,
		closeRect.Y+(closeRect.H-closeSize.Y)/2, "x", style.TextColor)

	if !ctx.HasActive() && ctx.isClicked(closeRect) {
		v.StopVideo()
		return
	}

	// Clicking elsewhere on the mini player jumps back to the video tab
	if !ctx.HasActive() && ctx.isClicked(area) {
		v.SetTab(content.KindVideo)
	}
}

func kindLabel(kind content.MediaKind) string {
	switch kind {
	case content.KindVideo:
		return "Video"
	case content.KindPDF:
		return "PDF"
	case content.KindLink:
		return "Link"
	default:
		return "?"
	}
}
