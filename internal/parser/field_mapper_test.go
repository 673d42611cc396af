package parser

import "testing"

func TestFoldHeader_StripsAccentsCaseAndWhitespace(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Código":      "codigo",
		"  CÓDIGO  ":  "codigo",
		"Descrição":   "descricao",
		"qtd sistema": "qtdsistema",
		"SIS\n":       "sis",
	}
	for in, want := range cases {
		if got := FoldHeader(in); got != want {
			t.Fatalf("FoldHeader(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapHeaders_AllThreeFields(t *testing.T) {
	t.Parallel()

	mapping := MapHeaders([]string{"Cod", "Desc", "sis"})
	if mapping[FieldCode] != 0 || mapping[FieldDescription] != 1 || mapping[FieldExpected] != 2 {
		t.Fatalf("unexpected mapping: %v", mapping)
	}
}

func TestMapHeaders_AccentAndCaseVariants(t *testing.T) {
	t.Parallel()

	mapping := MapHeaders([]string{"CÓDIGO", "Descrição", "Sistema"})
	if mapping[FieldCode] != 0 || mapping[FieldDescription] != 1 || mapping[FieldExpected] != 2 {
		t.Fatalf("unexpected mapping: %v", mapping)
	}
}

func TestMapHeaders_ProbeOrderPrefersEarlierAlias(t *testing.T) {
	t.Parallel()

	// "cod" probes before "codigo", so the Cod column wins even though
	// codigo appears first in the sheet.
	mapping := MapHeaders([]string{"codigo", "Cod"})
	if got := mapping[FieldCode]; got != 1 {
		t.Fatalf("code column = %d, want 1", got)
	}
}

func TestMapHeaders_MissingFieldsAbsent(t *testing.T) {
	t.Parallel()

	mapping := MapHeaders([]string{"Cod"})
	if _, ok := mapping[FieldDescription]; ok {
		t.Fatalf("description should be absent")
	}
	if _, ok := mapping[FieldExpected]; ok {
		t.Fatalf("expected-quantity should be absent")
	}
}

func TestParseQuantity_Fallbacks(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"10":    10,
		" 10 ":  10,
		"-3":    -3,
		"12.0":  12,
		"":      0,
		"abc":   0,
		"10abc": 0,
	}
	for in, want := range cases {
		if got := ParseQuantity(in); got != want {
			t.Fatalf("ParseQuantity(%q) = %d, want %d", in, got, want)
		}
	}
}
