package asciiart

import (
	"errors"
	"strings"
	"testing"
)

func TestFontRendererValidation(t *testing.T) {
	base := DefaultTextOptions()

	with := func(f func(*TextOptions)) TextOptions {
		o := base
		f(&o)
		return o
	}

	tests := []struct {
		name    string
		text    string
		opts    TextOptions
		wantErr error
	}{
		{"empty text", "", base, ErrInvalidParameter},
		{"too long", strings.Repeat("a", MaxTextLength+1), base, ErrInputTooLarge},
		{"font size too big", "a", with(func(o *TextOptions) { o.FontSize = 1001 }), ErrInvalidParameter},
		{"zero font size", "a", with(func(o *TextOptions) { o.FontSize = 0 }), ErrInvalidParameter},
		{"font size below one", "a", with(func(o *TextOptions) { o.FontSize = 0.5 }), ErrInvalidParameter},
		{"negative font size", "a", with(func(o *TextOptions) { o.FontSize = -4 }), ErrInvalidParameter},
		{"bad style", "a", with(func(o *TextOptions) { o.FontStyle = "slanted" }), ErrInvalidParameter},
		{"weight off step", "a", with(func(o *TextOptions) { o.FontWeight = "450" }), ErrInvalidParameter},
		{"weight out of range", "a", with(func(o *TextOptions) { o.FontWeight = "1000" }), ErrInvalidParameter},
		{"weight keyword", "a", with(func(o *TextOptions) { o.FontWeight = "bolder" }), ErrInvalidParameter},
		{"negative padding", "a", with(func(o *TextOptions) { o.Padding = -1 }), ErrInvalidParameter},
		{"bad color", "a", with(func(o *TextOptions) { o.Color = "not-a-color" }), ErrInvalidParameter},
		{"bad background", "a", with(func(o *TextOptions) { o.BackgroundColor = "#12" }), ErrInvalidParameter},
	}

	r := NewFontRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(tt.text, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Render error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFontRendererMaxLengthAccepted(t *testing.T) {
	opts := DefaultTextOptions()
	opts.FontSize = 1
	opts.Padding = 0

	if _, err := NewFontRenderer().Render(strings.Repeat("M", MaxTextLength), opts); err != nil {
		t.Errorf("Render of %d characters: %v", MaxTextLength, err)
	}
}

func TestParseFontWeight(t *testing.T) {
	for _, s := range []string{"100", "200", "300", "400", "500", "600", "700", "800", "900"} {
		if _, err := parseFontWeight(s); err != nil {
			t.Errorf("parseFontWeight(%q): %v", s, err)
		}
	}

	if w, _ := parseFontWeight("normal"); w != 400 {
		t.Errorf("normal = %d, want 400", w)
	}
	if w, _ := parseFontWeight("bold"); w != 700 {
		t.Errorf("bold = %d, want 700", w)
	}

	for _, s := range []string{"0", "050", "+100", "1e2", "Bold", ""} {
		if _, err := parseFontWeight(s); err == nil {
			t.Errorf("parseFontWeight(%q) succeeded, want error", s)
		}
	}
}

func TestFontRendererSurfaceSize(t *testing.T) {
	opts := DefaultTextOptions()
	opts.FontSize = 10
	opts.Padding = 3

	buf, err := NewFontRenderer().Render("ab", opts)
	if err != nil {
		t.Fatal(err)
	}

	if buf.Height != 21 { // ceil(10*1.5 + 2*3)
		t.Errorf("height = %d, want 21", buf.Height)
	}
	if buf.Width <= 6 {
		t.Errorf("width = %d, want more than the padding", buf.Width)
	}
	if err := buf.Validate(); err != nil {
		t.Errorf("rendered buffer invalid: %v", err)
	}

	// The corner is padding, so it must be the background color.
	if r, g, b, a, _ := buf.At(0, 0); r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("corner = (%d,%d,%d,%d), want white", r, g, b, a)
	}
}

func TestFontRendererDrawsText(t *testing.T) {
	buf, err := NewFontRenderer().Render("M", DefaultTextOptions())
	if err != nil {
		t.Fatal(err)
	}

	dark := 0
	for y := range buf.Height {
		for x := range buf.Width {
			if r, _, _, _, _ := buf.At(x, y); r < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no dark pixels drawn")
	}
}

func TestFontDescription(t *testing.T) {
	opts := TextOptions{
		Font:       `"Fira <Code>", monospace`,
		FontSize:   12,
		FontWeight: "bold",
		FontStyle:  "italic",
	}

	if got, want := opts.FontDescription(), "italic bold 12px Fira Code, monospace"; got != want {
		t.Errorf("FontDescription = %q, want %q", got, want)
	}

	if got, want := (TextOptions{FontSize: 48}).FontDescription(), "normal normal 48px monospace"; got != want {
		t.Errorf("default FontDescription = %q, want %q", got, want)
	}
}

func TestResolveFamily(t *testing.T) {
	tests := []struct {
		families string
		want     fontFamily
	}{
		{"monospace", familyMono},
		{"Menlo, Consolas, monospace", familyMono},
		{"Arial, monospace", familySans},
		{"Unknown, Courier New", familyMono},
		{"", familySans},
	}

	for _, tt := range tests {
		if got := resolveFamily(tt.families); got != tt.want {
			t.Errorf("resolveFamily(%q) = %v, want %v", tt.families, got, tt.want)
		}
	}
}

func TestParseCSSColor(t *testing.T) {
	tests := []struct {
		in         string
		r, g, b, a uint8
	}{
		{"#000000", 0, 0, 0, 255},
		{"#FFF", 255, 255, 255, 255},
		{" red ", 255, 0, 0, 255},
		{"transparent", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		c, err := parseCSSColor(tt.in)
		if err != nil {
			t.Fatalf("parseCSSColor(%q): %v", tt.in, err)
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != tt.a {
			t.Errorf("parseCSSColor(%q) = %+v", tt.in, c)
		}
	}
}
