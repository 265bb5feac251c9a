package fixedwidth

import "testing"

var nameLayout = Layout{
	{Name: "first", Position: Span(0, 5)},
	{Name: "last", Position: Span(5, 10)},
}

func TestExtract_TrimsFields(t *testing.T) {
	rec := Extract("John Doe  ", nameLayout)

	first, ok := rec.Get("first")
	if !ok || !first.Valid || first.String != "John" {
		t.Errorf(`first = %+v, want {"John", true}`, first)
	}
	last, ok := rec.Get("last")
	if !ok || !last.Valid || last.String != "Doe" {
		t.Errorf(`last = %+v, want {"Doe", true}`, last)
	}
}

func TestExtract_ShortLineYieldsAbsent(t *testing.T) {
	rec := Extract("Al", nameLayout)

	first, _ := rec.Get("first")
	if !first.Valid || first.String != "Al" {
		t.Errorf(`first = %+v, want {"Al", true}`, first)
	}
	last, _ := rec.Get("last")
	if last.Valid {
		t.Errorf("last = %+v, want absent", last)
	}
}

func TestExtract_WhitespaceFieldIsPresentButBlank(t *testing.T) {
	// Present-but-blank is distinct from position-out-of-range.
	rec := Extract("John      ", nameLayout)

	last, _ := rec.Get("last")
	if !last.Valid {
		t.Fatalf("last = %+v, want present", last)
	}
	if last.String != "" {
		t.Errorf("last.String = %q, want empty", last.String)
	}
}

func TestExtract_SpanClampedToLineEnd(t *testing.T) {
	// "Benj" reaches into the second span but not to its end.
	rec := Extract("Benjamin", Layout{
		{Name: "head", Position: Span(0, 4)},
		{Name: "tail", Position: Span(4, 20)},
	})

	tail, _ := rec.Get("tail")
	if !tail.Valid || tail.String != "amin" {
		t.Errorf(`tail = %+v, want {"amin", true}`, tail)
	}
}

func TestExtract_SingleColumn(t *testing.T) {
	layout := Layout{
		{Name: "flag", Position: Col(3)},
		{Name: "missing", Position: Col(10)},
	}

	rec := Extract("ab Y", layout)

	flag, _ := rec.Get("flag")
	if !flag.Valid || flag.String != "Y" {
		t.Errorf(`flag = %+v, want {"Y", true}`, flag)
	}
	missing, _ := rec.Get("missing")
	if missing.Valid {
		t.Errorf("missing = %+v, want absent", missing)
	}
}

func TestExtract_RuneIndexing(t *testing.T) {
	// Positions count characters, not bytes: "héllo" is 6 bytes but the
	// second span still starts at character 2.
	rec := Extract("héllo", Layout{
		{Name: "a", Position: Span(0, 2)},
		{Name: "b", Position: Span(2, 5)},
	})

	a, _ := rec.Get("a")
	if a.String != "hé" {
		t.Errorf("a = %q, want %q", a.String, "hé")
	}
	b, _ := rec.Get("b")
	if b.String != "llo" {
		t.Errorf("b = %q, want %q", b.String, "llo")
	}
}

func TestExtract_DuplicateNamesLastWriteWins(t *testing.T) {
	layout := Layout{
		{Name: "x", Position: Span(0, 2)},
		{Name: "y", Position: Span(2, 4)},
		{Name: "x", Position: Span(4, 6)},
	}

	rec := Extract("aabbcc", layout)

	if rec.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", rec.Len())
	}
	x, _ := rec.Get("x")
	if x.String != "cc" {
		t.Errorf("x = %q, want %q (last write wins)", x.String, "cc")
	}
	// Order keeps the first occurrence's slot.
	fields := rec.Fields()
	if fields[0].Name != "x" || fields[1].Name != "y" {
		t.Errorf("field order = [%s, %s], want [x, y]", fields[0].Name, fields[1].Name)
	}
}

func TestTrimTerminator(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc\n", "abc"},
		{"abc\r\n", "abc"},
		{"abc", "abc"},
		{"\n", ""},
		{"\r\n", ""},
		{"", ""},
		{"abc\n\n", "abc\n"},   // only one terminator stripped
		{"abc\r", "abc\r"},     // bare \r is not a terminator
		{"abc\r\r\n", "abc\r"}, // only the final \r\n stripped
	}
	for _, tt := range tests {
		if got := trimTerminator(tt.in); got != tt.want {
			t.Errorf("trimTerminator(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepairUTF8_DropsInvalidBytes(t *testing.T) {
	in := "ab\xffcd"
	if got := repairUTF8(in); got != "abcd" {
		t.Errorf("repairUTF8(%q) = %q, want %q", in, got, "abcd")
	}
}
