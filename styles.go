package stickyheaders

import "github.com/gdamore/tcell/v2"

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles.
	PrimaryTextColor         tcell.Color // Regular list items.
	HeaderTextColor          tcell.Color // Section headers in their natural place.
	PinnedHeaderTextColor    tcell.Color // The pinned section header.
	PinnedHeaderBackground   tcell.Color
	SelectedTextColor        tcell.Color // The item under the cursor.
	SelectedBackgroundColor  tcell.Color
}

// Styles defines the theme for applications. The default is for a black
// background and some basic colors.
var Styles = Theme{
	PrimitiveBackgroundColor: tcell.ColorBlack,
	BorderColor:              tcell.ColorWhite,
	TitleColor:               tcell.ColorWhite,
	PrimaryTextColor:         tcell.ColorWhite,
	HeaderTextColor:          tcell.ColorYellow,
	PinnedHeaderTextColor:    tcell.ColorBlack,
	PinnedHeaderBackground:   tcell.ColorYellow,
	SelectedTextColor:        tcell.ColorBlack,
	SelectedBackgroundColor:  tcell.ColorWhite,
}
