package diag

import "sort"

// Bag accumulates diagnostics up to a configurable cap and implements
// Reporter so it can be passed directly to any pipeline stage.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a Bag that stops accepting diagnostics once it holds max
// entries. max <= 0 means unlimited.
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Report appends d, unless the bag is already at capacity.
func (b *Bag) Report(d Diagnostic) {
	if b.max > 0 && len(b.items) >= b.max {
		return
	}
	b.items = append(b.items, d)
}

// HasErrors reports whether any accumulated diagnostic is SevError or
// above.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Items returns the accumulated diagnostics. Callers must not mutate the
// returned slice.
func (b *Bag) Items() []Diagnostic { return b.items }

// Sort orders diagnostics by file, then start offset, then end offset, then
// severity (descending), then code, for stable and deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup removes diagnostics that share both Code and Primary span with an
// earlier entry, keeping the first occurrence.
func (b *Bag) Dedup() {
	seen := make(map[Code]map[string]bool)
	out := b.items[:0:0]
	for _, d := range b.items {
		key := d.Primary.String()
		if seen[d.Code] == nil {
			seen[d.Code] = make(map[string]bool)
		}
		if seen[d.Code][key] {
			continue
		}
		seen[d.Code][key] = true
		out = append(out, d)
	}
	b.items = out
}
