package match

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"Urovo DI4", "urovo di4"},
		{"  Máquina de Café  ", "maquina de cafe"},
		{"SKU-123", "sku123"},
		{"Impressora (Térmica) 80mm!", "impressora termica 80mm"},
		{"ÁÉÍÓÚ àèìòù ç Ñ", "aeiou aeiou c n"},
		{"***", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Urovo DI4", "Máquina de Café", "SKU-123", "", "ção 100%"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"cafe", "café", 1},
	}
	for _, c := range cases {
		if got := EditDistance(c.a, c.b); got != c.want {
			t.Fatalf("EditDistance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestEditDistanceZeroOnlyWhenEqual(t *testing.T) {
	pairs := [][2]string{{"a", "b"}, {"abc", "abd"}, {"x", ""}}
	for _, p := range pairs {
		if EditDistance(p[0], p[1]) == 0 {
			t.Fatalf("EditDistance(%q, %q) = 0 for unequal strings", p[0], p[1])
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("", ""); got != 1 {
		t.Fatalf("Similarity of two empty strings = %v, want 1", got)
	}
	for _, s := range []string{"a", "urovo di4", "impressora termica"} {
		if got := Similarity(s, s); got != 1 {
			t.Fatalf("Similarity(%q, %q) = %v, want 1", s, s, got)
		}
	}
	if Similarity("abc", "") != 0 {
		t.Fatalf("expected zero similarity against empty string")
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"urovo di4", "urovo di5"},
		{"leitor de codigo", "leitor codigo"},
		{"abc", "xyz"},
	}
	for _, p := range pairs {
		ab, ba := Similarity(p[0], p[1]), Similarity(p[1], p[0])
		if ab != ba {
			t.Fatalf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Fatalf("Similarity(%q, %q) = %v out of [0,1]", p[0], p[1], ab)
		}
	}
}
