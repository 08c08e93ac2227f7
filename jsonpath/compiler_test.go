package jsonpath

import "testing"

func TestWeights(t *testing.T) {
	path := "['$']['body']['item1']['level'][1]['id']"

	cases := []struct {
		selector string
		want     int
	}{
		{"$.*", 2},
		{"$.body.*", 4},
		{"$.body.item1.*", 8},
		{"$.body.item1.level.*", 16},
		{"$.body.item1.level[1].*", 32},
		{"$.body.item1.level[1].id.*", 64},
		{"$.body.item2.*", 0},
		{"$.body.item1.level[*].id", 32},
		{"$.body..level[].id.*", 16},
	}

	for _, c := range cases {
		m, err := Compile(c.selector)
		if err != nil {
			t.Fatalf("Compile(%q): %v", c.selector, err)
		}
		if got := m.Weight(path); got != c.want {
			t.Errorf("Weight(%q) on selector %q = %d, want %d", path, c.selector, got, c.want)
		}
	}
}

func TestCompileRejectsMalformedBracket(t *testing.T) {
	if _, err := Compile("$.body[abc]"); err == nil {
		t.Fatal("expected compile error for non-numeric, non-quoted bracket segment")
	}
}

func TestCompileRequiresDollarPrefix(t *testing.T) {
	if _, err := Compile("body.item1"); err == nil {
		t.Fatal("expected compile error for selector missing $ prefix")
	}
}

func TestMatchesExactPath(t *testing.T) {
	m, err := Compile("$.body.item1")
	if err != nil {
		t.Fatal(err)
	}
	if !m.Matches("['$']['body']['item1']") {
		t.Error("expected match on exact path")
	}
	if m.Matches("['$']['body']['item2']") {
		t.Error("did not expect match on different key")
	}
}
