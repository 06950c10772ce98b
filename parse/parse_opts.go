package parse

import "github.com/maxmalkin/sdiff/format"

type parseOpts struct {
	format    *format.Format
	sourceTag string
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseTOML() ParseOption {
	return ParseFormat(format.TOMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = &f }
}

// SourceTag names the input in error messages, usually a file path.
func SourceTag(name string) ParseOption {
	return func(o *parseOpts) { o.sourceTag = name }
}
