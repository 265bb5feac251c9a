package fixedwidth

import "strings"

// trimTerminator strips one trailing line terminator ("\n" or "\r\n").
// A bare trailing "\r" is not a terminator and stays put. Extraction
// always runs on the terminator-stripped line so a trailing terminator
// never pollutes the last field's value.
func trimTerminator(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2]
	}
	return strings.TrimSuffix(line, "\n")
}

// repairUTF8 drops invalid byte sequences from the line. This is lossy and
// irreversible: offending bytes are removed, not substituted. Callers that
// need the original bytes untouched use WithRawEncoding.
func repairUTF8(line string) string {
	return strings.ToValidUTF8(line, "")
}

// Extract produces a Record from a single normalized line (no trailing
// terminator). Positions index logical characters (runes). For each field
// in layout order: a position starting beyond the line's end yields an
// absent Value; otherwise the value is the selected substring with leading
// and trailing whitespace removed. Spans reaching past the line's end are
// clamped to it. Extract never fails; absence is a value.
func Extract(line string, layout Layout) *Record {
	return extract(line, layout, true)
}

func extract(line string, layout Layout, byRune bool) *Record {
	var runes []rune
	n := len(line)
	if byRune {
		runes = []rune(line)
		n = len(runes)
	}
	slice := func(start, end int) string {
		if byRune {
			return string(runes[start:end])
		}
		return line[start:end]
	}

	rec := newRecord(len(layout))
	for _, spec := range layout {
		var v Value
		switch spec.Position.kind {
		case posCol:
			if i := spec.Position.col; i >= 0 && i < n {
				v = Value{String: strings.TrimSpace(slice(i, i+1)), Valid: true}
			}
		case posSpan:
			start, end := spec.Position.start, spec.Position.end
			if start >= 0 && start < n && end > start {
				if end > n {
					end = n
				}
				v = Value{String: strings.TrimSpace(slice(start, end)), Valid: true}
			}
		}
		rec.set(spec.Name, v)
	}
	return rec
}
