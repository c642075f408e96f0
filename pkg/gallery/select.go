package gallery

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Options bounds the fetch and selection.
type Options struct {
	FetchLimit     int    // photos requested from the library
	MaxScreenshots int    // screenshots kept after filtering
	Match          string // substring that marks a screenshot
}

// DefaultOptions returns the stock limits: 30 fetched, 15 kept, matching "screenshot".
func DefaultOptions() Options {
	return Options{FetchLimit: 30, MaxScreenshots: 15, Match: "screenshot"}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.FetchLimit <= 0 {
		o.FetchLimit = d.FetchLimit
	}
	if o.MaxScreenshots <= 0 {
		o.MaxScreenshots = d.MaxScreenshots
	}
	if o.Match == "" {
		o.Match = d.Match
	}
	return o
}

// IsScreenshot reports whether a's filename contains match ignoring case,
// or a's URI contains match exactly.
func IsScreenshot(a Asset, match string) bool {
	fold := cases.Fold()
	if strings.Contains(fold.String(a.Filename), fold.String(match)) {
		return true
	}
	return strings.Contains(a.URI, match)
}

// Filter keeps the screenshot assets, preserving order.
func Filter(assets []Asset, match string) []Asset {
	var out []Asset
	for _, a := range assets {
		if IsScreenshot(a, match) {
			out = append(out, a)
		}
	}
	return out
}

// Truncate returns at most max leading assets.
func Truncate(assets []Asset, max int) []Asset {
	if len(assets) > max {
		return assets[:max]
	}
	return assets
}

// ToScreenshots maps assets to their display form. Assets without a creation
// time are dated now().
func ToScreenshots(assets []Asset, dates DateFormatter, now func() time.Time) []Screenshot {
	out := make([]Screenshot, 0, len(assets))
	for _, a := range assets {
		ts := a.CreationTime
		if ts.IsZero() {
			ts = now()
		}
		out = append(out, Screenshot{URI: a.URI, Date: dates.FormatDate(ts)})
	}
	return out
}

// Select runs filter, truncate and map over assets in that order.
func Select(assets []Asset, opts Options, dates DateFormatter, now func() time.Time) []Screenshot {
	opts = opts.withDefaults()
	return ToScreenshots(Truncate(Filter(assets, opts.Match), opts.MaxScreenshots), dates, now)
}
