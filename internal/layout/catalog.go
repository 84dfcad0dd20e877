package layout

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Kind is a widget type tag from the closed catalog.
type Kind string

const (
	KindButton Kind = "Button"
	KindLabel  Kind = "Label"
	KindEntry  Kind = "Entry"
	KindFrame  Kind = "Frame"
	KindMenu   Kind = "Menu"
)

// Defaults holds the initial geometry and text for a widget kind.
type Defaults struct {
	Width  int
	Height int
	Text   string
}

var catalog = []Kind{KindButton, KindLabel, KindEntry, KindFrame, KindMenu}

// Kinds returns the catalog in palette order.
func Kinds() []Kind {
	out := make([]Kind, len(catalog))
	copy(out, catalog)
	return out
}

// Known reports whether tag names a catalog kind. Matching is exact;
// callers are expected to reject anything else before touching the model.
func Known(tag string) bool {
	for _, k := range catalog {
		if string(k) == tag {
			return true
		}
	}
	return false
}

// DefaultsFor returns the default geometry and text for a kind.
// It is total over the catalog; unknown tags are the caller's problem.
func DefaultsFor(kind Kind) Defaults {
	d := Defaults{Width: 100, Height: 30, Text: string(kind)}
	switch kind {
	case KindFrame:
		d.Width, d.Height = 150, 100
		d.Text = ""
	case KindMenu:
		d.Width, d.Height = 120, 30
	}
	return d
}

// HasText reports whether a kind carries editable text. Frame is a pure
// container; the property panel must not offer a text field for it.
func HasText(kind Kind) bool {
	return kind != KindFrame
}

// Closest returns the catalog kind nearest to tag by edit distance.
// Used only for diagnostics when a drop carries an unrecognized tag.
func Closest(tag string) Kind {
	best := catalog[0]
	bestDist := -1
	for _, k := range catalog {
		dist := levenshtein.ComputeDistance(strings.ToLower(tag), strings.ToLower(string(k)))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = k, dist
		}
	}
	return best
}
