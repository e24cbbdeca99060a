package asciiart

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestMetadataWireFormat(t *testing.T) {
	m := Metadata{
		Width:          2,
		Height:         3,
		CharacterCount: 6,
		ProcessingTime: 1500 * time.Microsecond,
		Charset:        "#. ",
		HasColor:       true,
	}

	b, err := json.Marshal(Result{Metadata: m})
	if err != nil {
		t.Fatal(err)
	}
	want := `"metadata":{"width":2,"height":3,"characterCount":6,"processingTime":1.5,"charset":"#. ","hasColor":true}`
	if !strings.Contains(string(b), want) {
		t.Errorf("json = %s, want it to contain %s", b, want)
	}
	if strings.Contains(string(b), `"colors"`) {
		t.Errorf("json = %s, colors should be omitted when nil", b)
	}

	y, err := yaml.Marshal(Result{Metadata: m})
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{"characterCount: 6", "processingTime: 1.5", "hasColor: true"} {
		if !strings.Contains(string(y), line) {
			t.Errorf("yaml =\n%s\nwant it to contain %q", y, line)
		}
	}
}
