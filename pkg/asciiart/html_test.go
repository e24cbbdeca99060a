package asciiart

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML("<a href=\"x\">&'`</a>")
	want := "&lt;a href=&quot;x&quot;&gt;&amp;&#39;&#96;&lt;/a&gt;"
	if got != want {
		t.Errorf("EscapeHTML = %q, want %q", got, want)
	}
}

func TestCSS(t *testing.T) {
	tests := []struct {
		c    CellColor
		want string
	}{
		{CellColor{R: 255, G: 128, B: 0, A: 255}, "rgba(255, 128, 0, 1)"},
		{CellColor{A: 0}, "rgba(0, 0, 0, 0)"},
		{CellColor{R: 1, G: 2, B: 3, A: 128}, "rgba(1, 2, 3, 0.502)"},
	}

	for _, tt := range tests {
		if got := tt.c.CSS(); got != tt.want {
			t.Errorf("CSS(%+v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

// preText extracts the decoded text content of the single <pre> in fragment.
func preText(t *testing.T, fragment string) string {
	t.Helper()

	var sb strings.Builder
	inPre := false
	z := html.NewTokenizer(strings.NewReader(fragment))

	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "pre" {
				inPre = true
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "pre" {
				inPre = false
			}
		case html.TextToken:
			if inPre {
				sb.Write(z.Text())
			}
		}
	}
}

func TestHTMLRoundTripsEveryGlyph(t *testing.T) {
	charsets := []string{"a&b<c>d\"e'f`g"}
	for _, p := range Presets() {
		charsets = append(charsets, string(p))
	}

	for _, charset := range charsets {
		for _, colored := range []bool{false, true} {
			g, err := New(WithCharset(charset), WithColor(colored))
			if err != nil {
				t.Fatalf("New(%q): %v", charset, err)
			}

			res, err := g.ConvertImage(gradientImage(200, 20))
			if err != nil {
				t.Fatalf("ConvertImage(%q): %v", charset, err)
			}

			if diff := cmp.Diff(res.Text, preText(t, res.HTML)); diff != "" {
				t.Errorf("charset %q colored=%v: decoded HTML differs from text (-text +html):\n%s", charset, colored, diff)
			}
		}
	}
}

func TestHTMLStructure(t *testing.T) {
	g, err := New(WithColor(true))
	if err != nil {
		t.Fatal(err)
	}

	res, err := g.ConvertImage(solidBuffer(2, 1, CellColor{R: 10, G: 20, B: 30, A: 255}))
	if err != nil {
		t.Fatal(err)
	}

	want := `<pre style="font-family: monospace; line-height: 1; margin: 0; white-space: pre; background-color: #000;">` +
		`<span style="color: rgba(10, 20, 30, 1)">@</span>` +
		`<span style="color: rgba(10, 20, 30, 1)">@</span>` +
		`</pre>`
	if res.HTML != want {
		t.Errorf("HTML =\n%s\nwant\n%s", res.HTML, want)
	}

	if !strings.HasPrefix(htmlPreOpen(false), `<pre style="font-family: monospace; line-height: 1; margin: 0; white-space: pre;">`) {
		t.Errorf("plain pre = %q", htmlPreOpen(false))
	}
}
