// SPDX-License-Identifier: MIT
// Package: roomcost/roomdata

package roomdata

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/roomcost/house"
)

// Format names an input format.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// ParseFormat validates a user supplied format name (case-insensitive).
// "" and "auto" return "" meaning "detect from the file name".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", "auto":
		return "", nil
	case FormatText, FormatYAML, FormatHCL:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// DetectFormat picks a format from the file extension: .yaml/.yml → YAML,
// .hcl → HCL, anything else → text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	default:
		return FormatText
	}
}

// Decode builds a House from src in the given format. filename is used for
// HCL diagnostics and may be empty.
func Decode(format Format, src []byte, filename string, opts ...Option) (*house.House, error) {
	switch format {
	case FormatText:
		return ParseHouse(bytes.NewReader(src), opts...)
	case FormatYAML:
		return DecodeYAML(src, opts...)
	case FormatHCL:
		return DecodeHCL(src, filename, opts...)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// Load reads path and decodes it. An empty format is detected from the
// extension.
func Load(path string, format Format, opts ...Option) (*house.House, error) {
	if format == "" {
		format = DetectFormat(path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roomdata: Load: %w", err)
	}

	return Decode(format, src, path, opts...)
}
