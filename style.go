package grace

// Spacing constants for consistent layout.
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
	Space2XL  float32 = 24 // 2x extra large
	Space3XL  float32 = 32 // 3x extra large
)

// Style defines the visual appearance of UI elements.
type Style struct {
	// Text colors
	TextColor          uint32
	TextDisabledColor  uint32
	TextHighlightColor uint32

	// Panel colors
	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32 // Header background (0 = use ButtonColor)
	PanelHeaderTextColor uint32 // Header text (0 = use TextColor)

	// Button colors
	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	// Selection colors
	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32

	// Gallery card colors
	CardColor        uint32 // Card background when no thumbnail is loaded
	CardBorderColor  uint32
	CardActiveBorder uint32 // Border of the card nearest viewport center
	CardCaptionColor uint32
	CardIndexColor   uint32 // The "N / total" position readout

	// Tab strip colors (detail view)
	TabBgColor       uint32
	TabActiveColor   uint32
	TabTextColor     uint32
	TabActiveText    uint32
	TabUnderlineSize float32

	// Input colors (memo editor, search box)
	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32

	// Separator
	SeparatorColor uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Toast notification colors
	ToastInfoColor    uint32
	ToastSuccessColor uint32
	ToastWarningColor uint32
	ToastErrorColor   uint32

	// Sizing
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32 // Default gap between items
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32

	// Gallery sizing
	CardWidth    float32
	CardHeight   float32
	CardSpacing  float32 // Gap between cards; CardWidth+CardSpacing is the strip stride
	CaptionInset float32

	// Border
	BorderSize float32

	// Scrollbar
	ScrollbarSize float32
}

// Stride returns the horizontal distance between adjacent gallery cards.
func (s *Style) Stride() float32 {
	return s.CardWidth + s.CardSpacing
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		// Text colors
		TextColor:          ColorWhite,
		TextDisabledColor:  ColorGray,
		TextHighlightColor: RGBA(240, 200, 120, 255),

		// Panel
		PanelColor:           RGBA(20, 20, 20, 200),
		PanelBorderColor:     RGBA(80, 80, 80, 255),
		PanelHeaderBgColor:   RGBA(40, 40, 45, 255),
		PanelHeaderTextColor: 0, // Use TextColor

		// Buttons
		ButtonColor:         RGBA(50, 50, 50, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),

		// Selection
		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		// Gallery cards
		CardColor:        RGBA(35, 35, 38, 255),
		CardBorderColor:  RGBA(70, 70, 75, 255),
		CardActiveBorder: RGBA(240, 200, 120, 255),
		CardCaptionColor: RGBA(220, 220, 220, 255),
		CardIndexColor:   RGBA(160, 160, 160, 255),

		// Tabs
		TabBgColor:       RGBA(30, 30, 32, 255),
		TabActiveColor:   RGBA(55, 55, 60, 255),
		TabTextColor:     RGBA(170, 170, 170, 255),
		TabActiveText:    ColorWhite,
		TabUnderlineSize: 2,

		// Input
		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),

		// Separator
		SeparatorColor: RGBA(80, 80, 80, 255),

		// Scrollbar
		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		// Toast notifications
		ToastInfoColor:    RGBA(50, 100, 150, 230),
		ToastSuccessColor: RGBA(50, 130, 80, 230),
		ToastWarningColor: RGBA(180, 130, 40, 230),
		ToastErrorColor:   RGBA(180, 60, 60, 230),

		// Sizing
		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,

		// Gallery sizing
		CardWidth:    360,
		CardHeight:   240,
		CardSpacing:  40,
		CaptionInset: 12,

		// Border
		BorderSize: 1,

		// Scrollbar
		ScrollbarSize: 12,
	}
}

// SanctuaryStyle returns the warm, parchment-toned theme used by the
// GRACE gallery client.
func SanctuaryStyle() Style {
	s := DefaultStyle()

	// Warm dark background with gold accents
	s.TextColor = RGBA(235, 230, 220, 255)
	s.TextHighlightColor = RGBA(212, 175, 55, 255)
	s.PanelColor = RGBA(28, 24, 20, 235)
	s.PanelBorderColor = RGBA(90, 78, 60, 255)
	s.PanelHeaderBgColor = RGBA(48, 40, 30, 255)
	s.PanelHeaderTextColor = RGBA(212, 175, 55, 255)

	s.ButtonColor = RGBA(52, 44, 34, 255)
	s.ButtonHoveredColor = RGBA(72, 60, 44, 255)
	s.ButtonActiveColor = RGBA(110, 90, 55, 255)

	s.SelectedBgColor = RGBA(110, 90, 55, 255)
	s.HoveredBgColor = RGBA(58, 50, 40, 255)

	s.CardColor = RGBA(40, 34, 28, 255)
	s.CardBorderColor = RGBA(90, 78, 60, 255)
	s.CardActiveBorder = RGBA(212, 175, 55, 255)
	s.CardCaptionColor = RGBA(235, 230, 220, 255)
	s.CardIndexColor = RGBA(170, 155, 130, 255)

	s.TabBgColor = RGBA(34, 29, 24, 255)
	s.TabActiveColor = RGBA(58, 48, 36, 255)
	s.TabTextColor = RGBA(170, 155, 130, 255)
	s.TabActiveText = RGBA(235, 230, 220, 255)

	s.InputBgColor = RGBA(24, 20, 17, 255)
	s.InputFocusedBgColor = RGBA(34, 29, 24, 255)
	s.InputBorderColor = RGBA(110, 90, 55, 255)

	s.SeparatorColor = RGBA(90, 78, 60, 160)

	s.ScrollbarGrabColor = RGBA(90, 78, 60, 255)
	s.ScrollbarGrabHovered = RGBA(120, 100, 70, 255)

	s.FontScale = 1.5
	s.ItemSpacing = 6
	s.PanelPadding = 12
	s.ButtonPadding = 8

	return s
}

// LightStyle returns a light theme for daytime projection setups.
func LightStyle() Style {
	s := DefaultStyle()

	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.TextHighlightColor = RGBA(0, 100, 200, 255)

	s.PanelColor = RGBA(245, 245, 245, 250)
	s.PanelBorderColor = RGBA(200, 200, 200, 255)
	s.PanelHeaderBgColor = RGBA(220, 220, 225, 255)
	s.PanelHeaderTextColor = RGBA(40, 40, 40, 255)

	s.ButtonColor = RGBA(220, 220, 220, 255)
	s.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	s.ButtonActiveColor = RGBA(180, 180, 180, 255)
	s.ButtonDisabledColor = RGBA(230, 230, 230, 255)

	s.SelectedBgColor = RGBA(0, 120, 215, 255)
	s.HoveredBgColor = RGBA(230, 230, 230, 255)

	s.CardColor = RGBA(252, 252, 252, 255)
	s.CardBorderColor = RGBA(200, 200, 200, 255)
	s.CardActiveBorder = RGBA(0, 120, 215, 255)
	s.CardCaptionColor = RGBA(40, 40, 40, 255)
	s.CardIndexColor = RGBA(120, 120, 120, 255)

	s.TabBgColor = RGBA(235, 235, 235, 255)
	s.TabActiveColor = RGBA(255, 255, 255, 255)
	s.TabTextColor = RGBA(110, 110, 110, 255)
	s.TabActiveText = RGBA(20, 20, 20, 255)

	s.InputBgColor = ColorWhite
	s.InputFocusedBgColor = ColorWhite
	s.InputBorderColor = RGBA(150, 150, 150, 255)

	s.SeparatorColor = RGBA(200, 200, 200, 255)

	s.ScrollbarBgColor = RGBA(240, 240, 240, 255)
	s.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	s.ScrollbarGrabHovered = RGBA(160, 160, 160, 255)

	return s
}
