package themes

// Built-in palettes. The bengal palettes are the house themes; the
// rest mirror popular editor color schemes.
var (
	// BengalTiger is a warm dark theme with orange accents.
	BengalTiger = Palette{
		Name:                "bengal-tiger",
		Background:          "#231f1a",
		BackgroundHighlight: "#332c22",
		Text:                "#f5ede1",
		ControlFlow:         "#ff9d45",
		Declaration:         "#ffb86b",
		Import:              "#e8824a",
		String:              "#b8cc68",
		Number:              "#e5c07b",
		Type:                "#7fc8c4",
		Function:            "#ffd27f",
		Variable:            "#f5ede1",
		Constant:            "#e5c07b",
		Comment:             "#8a7f6e",
		Muted:               "#8a7f6e",
		Operator:            "#d4b896",
		Tag:                 "#ff9d45",
		BoldControl:         true,
		BoldDeclaration:     true,
		ItalicComment:       true,
		ItalicDocstring:     true,
	}

	// BengalSnowLynx is the light counterpart of the house themes.
	BengalSnowLynx = Palette{
		Name:                "bengal-snow-lynx",
		Background:          "#fbfaf8",
		BackgroundHighlight: "#f1ede5",
		Text:                "#2d2a26",
		ControlFlow:         "#b35309",
		Declaration:         "#92400e",
		Import:              "#9a3412",
		String:              "#3f6212",
		Number:              "#854d0e",
		Type:                "#0e7490",
		Function:            "#6d28d9",
		Variable:            "#2d2a26",
		Constant:            "#854d0e",
		Comment:             "#78716c",
		Muted:               "#78716c",
		Operator:            "#57534e",
		Tag:                 "#b35309",
		BoldControl:         true,
		BoldDeclaration:     true,
		ItalicComment:       true,
		ItalicDocstring:     true,
	}

	// BengalCharcoal is a low-saturation dark theme.
	BengalCharcoal = Palette{
		Name:                "bengal-charcoal",
		Background:          "#2b2b2b",
		BackgroundHighlight: "#3a3a3a",
		Text:                "#dcdcdc",
		ControlFlow:         "#c9a26d",
		Declaration:         "#c9a26d",
		Import:              "#b08d57",
		String:              "#a5c261",
		Number:              "#6897bb",
		Type:                "#8ab4c8",
		Function:            "#ffc66d",
		Variable:            "#dcdcdc",
		Constant:            "#9876aa",
		Comment:             "#808080",
		Muted:               "#808080",
		BoldControl:         true,
		BoldDeclaration:     false,
		ItalicComment:       true,
		ItalicDocstring:     true,
	}

	// BengalBlue is a deep-blue dark theme.
	BengalBlue = Palette{
		Name:                "bengal-blue",
		Background:          "#0f1b2d",
		BackgroundHighlight: "#1b2a40",
		Text:                "#d6e2f0",
		ControlFlow:         "#82aaff",
		Declaration:         "#82aaff",
		Import:              "#c792ea",
		String:              "#c3e88d",
		Number:              "#f78c6c",
		Type:                "#ffcb6b",
		Function:            "#89ddff",
		Variable:            "#d6e2f0",
		Constant:            "#f78c6c",
		Comment:             "#5f7a9d",
		Muted:               "#5f7a9d",
		BoldControl:         true,
		BoldDeclaration:     true,
		ItalicComment:       true,
		ItalicDocstring:     true,
	}

	Monokai = Palette{
		Name:                "monokai",
		Background:          "#272822",
		BackgroundHighlight: "#3e3d32",
		Text:                "#f8f8f2",
		ControlFlow:         "#f92672",
		Declaration:         "#66d9ef",
		Import:              "#f92672",
		String:              "#e6db74",
		Number:              "#ae81ff",
		Boolean:             "#ae81ff",
		Type:                "#66d9ef",
		Function:            "#a6e22e",
		Variable:            "#f8f8f2",
		Constant:            "#ae81ff",
		Comment:             "#75715e",
		Muted:               "#75715e",
		Operator:            "#f92672",
		Attribute:           "#a6e22e",
		Tag:                 "#f92672",
		Escape:              "#ae81ff",
		BoldControl:         false,
		BoldDeclaration:     false,
		ItalicComment:       true,
		ItalicDocstring:     true,
	}

	Dracula = Palette{
		Name:                "dracula",
		Background:          "#282a36",
		BackgroundHighlight: "#44475a",
		Text:                "#f8f8f2",
		ControlFlow:         "#ff79c6",
		Declaration:         "#ff79c6",
		Import:              "#ff79c6",
		String:              "#f1fa8c",
		Number:              "#bd93f9",
		Boolean:             "#bd93f9",
		Type:                "#8be9fd",
		Function:            "#50fa7b",
		Variable:            "#f8f8f2",
		Constant:            "#bd93f9",
		Comment:             "#6272a4",
		Muted:               "#6272a4",
		Warning:             "#ffb86c",
		Error:               "#ff5555",
		Added:               "#50fa7b",
		Removed:             "#ff5555",
		Operator:            "#ff79c6",
		Attribute:           "#50fa7b",
		Tag:                 "#ff79c6",
		Escape:              "#ffb86c",
		BoldControl:         false,
		BoldDeclaration:     false,
		ItalicComment:       true,
		ItalicDocstring:     true,
	}

	GitHubLight = Palette{
		Name:                "github-light",
		Background:          "#ffffff",
		BackgroundHighlight: "#fff8c5",
		Text:                "#1f2328",
		ControlFlow:         "#cf222e",
		Declaration:         "#cf222e",
		Import:              "#cf222e",
		String:              "#0a3069",
		Number:              "#0550ae",
		Boolean:             "#0550ae",
		Type:                "#953800",
		Function:            "#8250df",
		Variable:            "#1f2328",
		Constant:            "#0550ae",
		Comment:             "#57606a",
		Muted:               "#6e7781",
		Operator:            "#cf222e",
		Attribute:           "#0550ae",
		Tag:                 "#116329",
		Escape:              "#0550ae",
		BoldControl:         false,
		BoldDeclaration:     false,
		ItalicComment:       true,
		ItalicDocstring:     true,
	}

	GitHubDark = Palette{
		Name:                "github-dark",
		Background:          "#0d1117",
		BackgroundHighlight: "#272115",
		Text:                "#e6edf3",
		ControlFlow:         "#ff7b72",
		Declaration:         "#ff7b72",
		Import:              "#ff7b72",
		String:              "#a5d6ff",
		Number:              "#79c0ff",
		Boolean:             "#79c0ff",
		Type:                "#ffa657",
		Function:            "#d2a8ff",
		Variable:            "#e6edf3",
		Constant:            "#79c0ff",
		Comment:             "#8b949e",
		Muted:               "#8b949e",
		Operator:            "#ff7b72",
		Attribute:           "#79c0ff",
		Tag:                 "#7ee787",
		Escape:              "#79c0ff",
		BoldControl:         false,
		BoldDeclaration:     false,
		ItalicComment:       true,
		ItalicDocstring:     true,
	}

	// GitHub follows the reader's prefers-color-scheme setting.
	GitHub = Adaptive{
		Name:  "github",
		Light: GitHubLight,
		Dark:  GitHubDark,
	}
)
