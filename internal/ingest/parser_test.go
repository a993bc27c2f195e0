package ingest_test

import (
	"testing"

	"travel_catalog/internal/ingest"
)

func TestParse_QuotedAndEscapedFields(t *testing.T) {
	raw := "id,name,overview\n" +
		"t-1,\"Tokyo Food Walk\",\"Eat, drink, repeat\"\n" +
		"t-2,\"The \"\"Hidden\"\" Kyoto\",quiet lanes\n"

	rows := ingest.Parse(raw)
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if got := rows[0].Str("overview"); got != "Eat, drink, repeat" {
		t.Fatalf("delimiter inside quotes mangled: %q", got)
	}
	if got := rows[1].Str("name"); got != `The "Hidden" Kyoto` {
		t.Fatalf("doubled-quote escape mangled: %q", got)
	}
}

func TestParse_HeaderIsCaseInsensitive(t *testing.T) {
	rows := ingest.Parse("ID,Duration_Hours\nx-1,6\n")
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(rows))
	}
	if rows[0].Str("id") != "x-1" || rows[0].Float("duration_hours") != 6 {
		t.Fatalf("case-insensitive addressing failed: %+v", rows[0])
	}
}

func TestParse_ShortRowSkippedNeighborsKept(t *testing.T) {
	raw := "id,name,rating\n" +
		"a-1,First,4.5\n" +
		"broken-row\n" +
		"a-2,Last,4.0\n"

	rows := ingest.Parse(raw)
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if rows[0].Str("id") != "a-1" || rows[1].Str("id") != "a-2" {
		t.Fatalf("neighbors not retained: %+v", rows)
	}
}

func TestRow_Coercions(t *testing.T) {
	rows := ingest.Parse(
		"price,count,neg,private,flag,tags,junk,ver\n" +
			`"$1,200.50",4.6 stars,-30,YES,nope,"Food & Drink| Culture |",abc,v1.2.3` + "\n")
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(rows))
	}
	r := rows[0]

	if got := r.Float("price"); got != 1200.50 {
		t.Errorf("Float price = %v, want 1200.50", got)
	}
	if got := r.Int("count"); got != 4 {
		t.Errorf("Int count = %d, want 4", got)
	}
	if got := r.Float("neg"); got != -30 {
		t.Errorf("Float neg = %v, want -30", got)
	}
	if !r.Bool("private") {
		t.Errorf("Bool YES should be true")
	}
	if r.Bool("flag") {
		t.Errorf("Bool nope should be false")
	}
	if got := r.Float("junk"); got != 0 {
		t.Errorf("unparseable numeric should default to 0, got %v", got)
	}
	if got := r.Float("ver"); got != 1.2 {
		t.Errorf("Float ver = %v, want 1.2 (first decimal point only)", got)
	}
	tags := r.List("tags")
	if len(tags) != 2 || tags[0] != "Food & Drink" || tags[1] != "Culture" {
		t.Errorf("List = %v", tags)
	}
	if r.Has("missing") {
		t.Errorf("Has(missing) should be false")
	}
	if got := r.Float("missing"); got != 0 {
		t.Errorf("missing numeric should default to 0, got %v", got)
	}
}

func TestParse_EmptyAndHeaderOnly(t *testing.T) {
	if rows := ingest.Parse(""); rows != nil {
		t.Fatalf("empty input: want nil, got %v", rows)
	}
	if rows := ingest.Parse("id,name\n"); len(rows) != 0 {
		t.Fatalf("header only: want 0 rows, got %d", len(rows))
	}
}
