package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Texter is implemented by results with their own plain text rendering.
type Texter interface {
	WriteText(w io.Writer) error
}

// Write encodes v to w in the given format. In text format v is rendered
// with WriteText when it is a Texter and with fmt otherwise.
func Write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		return errors.WithStack(json.NewEncoder(w).Encode(v))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(enc.Close())
	case FormatText:
		if t, ok := v.(Texter); ok {
			return t.WriteText(w)
		}
		_, err := fmt.Fprintln(w, v)
		return errors.WithStack(err)
	default:
		return errors.Errorf("unsupported output format %v", format)
	}
}

// Set implements pflag.Value.
func (i *Format) Set(s string) error {
	return i.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (i *Format) Type() string {
	return "format"
}
