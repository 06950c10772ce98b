package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"json": JSONFormat,
		"j":    JSONFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"toml": TOMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(xml) err = %v, want ErrBadFormat", err)
	}
}

func TestFromPath(t *testing.T) {
	for in, want := range map[string]Format{
		"a/b/config.json": JSONFormat,
		"deploy.YAML":     YAMLFormat,
		"app.yml":         YAMLFormat,
		"Cargo.toml":      TOMLFormat,
	} {
		got, err := FromPath(in)
		if err != nil || got != want {
			t.Errorf("FromPath(%q) = %v, %v", in, got, err)
		}
	}
	for _, in := range []string{"noext", "file.txt"} {
		if _, err := FromPath(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("FromPath(%q) err = %v, want ErrBadFormat", in, err)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("round trip %v -> %q -> %v", f, d, back)
		}
		if f.Suffix() == "" {
			t.Errorf("%v has no suffix", f)
		}
	}
}
