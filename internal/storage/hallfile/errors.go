package hallfile

import (
	"fmt"
	"strings"
)

// RecordError reports one line that failed to decode. The rest of the file
// is still processed; record errors are collected and surfaced together
// once the whole file has been consumed.
type RecordError struct {
	File   string
	Line   int
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}

// LoadError aggregates every record that failed during a load. Records
// that decoded cleanly are retained by the caller, so a LoadError marks a
// partial load rather than a failed one.
type LoadError struct {
	Records []*RecordError
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d record(s) failed to load:", len(e.Records))
	for _, rec := range e.Records {
		b.WriteString("\n\t" + rec.Error())
	}
	return b.String()
}

// DuplicatePair names two index lines holding concerts with the same
// identity.
type DuplicatePair struct {
	Name      string
	Date      string
	FirstLine int
	OtherLine int
}

// DuplicateConcertError reports every identity collision found in the
// index file. The codec only detects and reports; both concerts stay
// loaded and the caller picks the resolution policy.
type DuplicateConcertError struct {
	Pairs []DuplicatePair
}

func (e *DuplicateConcertError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d duplicate concert(s) in %s:", len(e.Pairs), IndexFile)
	for _, p := range e.Pairs {
		fmt.Fprintf(&b, "\n\t%s %s (lines %d and %d)", p.Name, p.Date, p.FirstLine, p.OtherLine)
	}
	return b.String()
}
