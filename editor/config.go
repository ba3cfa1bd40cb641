package editor

import "github.com/rs/zerolog"

const (
	// DefaultVerticalPadding is the number of rows kept between the caret and
	// the top/bottom edges while scrolling.
	DefaultVerticalPadding = 3
	// DefaultHorizontalPadding is the number of columns kept between the caret
	// and the left/right edges while scrolling.
	DefaultHorizontalPadding = 5
)

// Config configures an EditArea.
type Config struct {
	// Zero selects the default; a negative value disables the padding. A
	// padding is also disabled whenever the display dimension is smaller than
	// twice its value.
	VerticalPadding   int
	HorizontalPadding int

	// Logger receives debug events. Nil disables logging.
	Logger *zerolog.Logger

	// KeyMap classifies key messages into caret moves.
	KeyMap KeyMap
}

func (c Config) verticalPadding() int {
	switch {
	case c.VerticalPadding < 0:
		return 0
	case c.VerticalPadding == 0:
		return DefaultVerticalPadding
	}
	return c.VerticalPadding
}

func (c Config) horizontalPadding() int {
	switch {
	case c.HorizontalPadding < 0:
		return 0
	case c.HorizontalPadding == 0:
		return DefaultHorizontalPadding
	}
	return c.HorizontalPadding
}

func (c Config) logger() zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return *c.Logger
}
