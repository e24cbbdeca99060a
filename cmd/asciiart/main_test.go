package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writePNG writes a solid w x h png to dir/name.
func writePNG(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunConvertsFile(t *testing.T) {
	isolateConfig(t)
	path := writePNG(t, t.TempDir(), "black.png", 10, 10, color.Black)

	code, out, stderr := runCLI(t, "", "-w", "4", path)
	if code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}

	// floor(10/10 * 4 * 0.55) = 2 rows; the output is not a terminal, so the format is text.
	if out != "@@@@\n@@@@\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunReadsPathsFromStdin(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", 4, 4, color.White)
	b := writePNG(t, dir, "b.png", 4, 4, color.Black)

	code, out, stderr := runCLI(t, a+"\n\n"+b+"\n", "-w", "2", "-a", "1", "-f", "json")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}

	dec := json.NewDecoder(strings.NewReader(out))
	var texts []string
	for dec.More() {
		var doc struct {
			Source string `json:"source"`
			Text   string `json:"text"`
		}
		if err := dec.Decode(&doc); err != nil {
			t.Fatal(err)
		}
		texts = append(texts, doc.Text)
	}

	if len(texts) != 2 || texts[0] != "  \n  " || texts[1] != "@@\n@@" {
		t.Errorf("texts = %q", texts)
	}
}

func TestRunDirectory(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	writePNG(t, dir, "one.png", 4, 4, color.Black)
	writePNG(t, dir, "nested/two.png", 4, 4, color.Black)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, stderr := runCLI(t, "", "-w", "2", "-a", "1", "--format", "html", dir)
	if code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}

	if n := strings.Count(out, "<figure>"); n != 2 {
		t.Errorf("%d figures, want 2:\n%s", n, out)
	}
}

func TestRunFailures(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png", 4, 4, color.Black)
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, stderr := runCLI(t, "", "-w", "2", bad, filepath.Join(dir, "missing.png"), good)
	if code != exitFailure {
		t.Errorf("exit code %d, want %d", code, exitFailure)
	}
	if !strings.Contains(out, "@@") {
		t.Errorf("good file not converted after failures, stdout = %q", out)
	}
	if !strings.Contains(stderr, "conversion failed") || !strings.Contains(stderr, "cannot read path") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRunUsageErrors(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--nope"}},
		{"bad format", []string{"-f", "png"}},
		{"bad interpolation", []string{"--interpolation", "lanczos"}},
		{"bad aspect ratio", []string{"-a", "0"}},
		{"colored grid too large", []string{"-C", "-w", "2000", "-H", "2000"}},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "missing.toml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, _, _ := runCLI(t, "", tt.args...); code != exitUsage {
				t.Errorf("exit code %d, want %d", code, exitUsage)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	code, _, stderr := runCLI(t, "", "--help")
	if code != exitOK {
		t.Errorf("exit code %d, want %d", code, exitOK)
	}
	if !strings.Contains(stderr, "--charset") {
		t.Errorf("usage does not list flags:\n%s", stderr)
	}
}

func TestRunText(t *testing.T) {
	isolateConfig(t)

	code, out, stderr := runCLI(t, "", "--text", "Hi", "-w", "40", "--font-size", "32")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if strings.Trim(out, " \n") == "" {
		t.Error("text rendered to a blank grid")
	}

	code, _, stderr = runCLI(t, "", "--text", "Hi", "--font-weight", "heavy")
	if code != exitFailure {
		t.Errorf("bad font weight: exit code %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stderr, "font weight") {
		t.Errorf("stderr = %q", stderr)
	}
}
