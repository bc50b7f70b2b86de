package source

import "fmt"

// Span is a half-open byte range [Start, End) within the file identified by
// File. Start and End are always expressed relative to the same file.
type Span struct {
	File  ID
	Start uint32
	End   uint32
}

// InvalidSpan is returned whenever a span cannot be constructed, e.g. when
// merging spans that belong to different files.
var InvalidSpan = Span{File: InvalidID}

// Valid reports whether the span refers to a real file and start <= end.
func (s Span) Valid() bool {
	return s.File.Valid() && s.Start <= s.End
}

// Contains reports whether offset falls inside the half-open range.
func (s Span) Contains(offset uint32) bool {
	return s.Valid() && offset >= s.Start && offset < s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Merge returns the union of s and other. If the two spans belong to
// different files the result is InvalidSpan. Merge is commutative.
func (s Span) Merge(other Span) Span {
	if s.File != other.File {
		return InvalidSpan
	}
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{File: s.File, Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
