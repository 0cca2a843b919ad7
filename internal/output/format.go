//go:generate go run github.com/dmarkham/enumer -type=Format -trimprefix=Format -transform=kebab -text
package output

// Format selects how command results are written.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)
