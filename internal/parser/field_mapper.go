package parser

// Field is one of the three semantic columns an import sheet must carry.
type Field int

const (
	FieldCode Field = iota
	FieldDescription
	FieldExpected
)

// fieldAliases lists the accepted header spellings per semantic field,
// in probe order: the first alias present in the sheet wins. Matching
// goes through FoldHeader, so case and accents do not matter. Adding a
// new vendor spelling is a data change here, not new branching logic.
var fieldAliases = map[Field][]string{
	FieldCode:        {"cod", "código", "codigo", "code", "ref", "referência", "referencia"},
	FieldDescription: {"desc", "descrição", "descricao", "nome", "description", "produto", "artigo"},
	FieldExpected:    {"sis", "sistema", "stock", "esperado", "expected", "qtd_sistema"},
}

// MapHeaders resolves each semantic field to a column index, probing
// aliases in priority order. Fields with no matching column are absent
// from the result.
func MapHeaders(headers []string) map[Field]int {
	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = FoldHeader(h)
	}

	mapping := make(map[Field]int)
	for field, aliases := range fieldAliases {
		for _, alias := range aliases {
			target := FoldHeader(alias)
			idx := -1
			for i, h := range folded {
				if h == target {
					idx = i
					break
				}
			}
			if idx >= 0 {
				mapping[field] = idx
				break
			}
		}
	}
	return mapping
}
