package config

import (
	"fmt"
	"strings"
)

// OutputFmt is the requested render output type.
type OutputFmt int

const (
	OutputFmtText OutputFmt = iota
	OutputFmtJSON
	OutputFmtGoSrc
)

var outputFmtNames = [...]string{
	OutputFmtText:  "text",
	OutputFmtJSON:  "json",
	OutputFmtGoSrc: "gosrc",
}

func (o OutputFmt) String() string {
	if o < 0 || int(o) >= len(outputFmtNames) {
		// this should never happen
		panic("unsupported format requested")
	}
	return outputFmtNames[o]
}

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtText:
		return ".txt"
	case OutputFmtJSON:
		return ".json"
	case OutputFmtGoSrc:
		return ".go"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// OutputFmtNames returns all known output format names.
func OutputFmtNames() []string {
	return append([]string{}, outputFmtNames[:]...)
}

// ParseOutputFmt converts a name to the corresponding OutputFmt.
func ParseOutputFmt(name string) (OutputFmt, error) {
	for i, n := range outputFmtNames {
		if strings.EqualFold(name, n) {
			return OutputFmt(i), nil
		}
	}
	return OutputFmtText, fmt.Errorf("%q is not a valid output format, try [%s]", name, strings.Join(outputFmtNames[:], ", "))
}
