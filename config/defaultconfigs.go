package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	// Warm wood board with plain stones; marks and labels get accents.
	DefaultTheme = Theme{
		UseGridLines:     true,
		FullWidthLetters: false,
		Colors: ConfigColors{
			BoardColor:        180, // Warm tan/wood
			BlackColor:        232, // Pure black stones
			WhiteColor:        255, // Pure white stones
			LineColor:         137, // Subtle brown grid lines
			MarkColor:         30,  // Teal accent for marks
			LabelColor:        65,  // Soft green labels
			DimColor:          243, // Grey for dimmed points
			LastPlayedColorBG: 65,  // Soft green for the last move
		},
		Symbols: ConfigSymbols{
			BlackStone:  '●',
			WhiteStone:  '●',
			BoardSquare: '┼',
			StarPoint:   '◦',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Viewer: ViewerConfig{
			ShowCoordinates: true,
			StartAtEnd:      false,
		},
	}
}
