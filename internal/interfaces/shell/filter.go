package shell

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/eletror-app/internal/domain/entity"
)

// CategoryAll valor del filtro de categoría que no excluye nada.
const CategoryAll = "Todos"

// foldTransformer descompone y elimina marcas diacríticas (NFD -> sin Mn -> NFC),
// de modo que "agua" encuentra "Água" e "iluminacao" encuentra "Iluminação".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold normaliza un texto para comparación sin mayúsculas ni acentos.
func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// FilterItems filtra artículos: la búsqueda coincide contra nombre O descripción
// (sin mayúsculas ni acentos) Y la categoría seleccionada (o "Todos").
// Función pura: aplicarla dos veces con los mismos argumentos da el mismo resultado.
func FilterItems(items []entity.InventoryItem, search, category string) []entity.InventoryItem {
	q := fold(search)
	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if q != "" && !strings.Contains(fold(it.Name), q) && !strings.Contains(fold(it.Description), q) {
			continue
		}
		if category != "" && category != CategoryAll && it.Category != category {
			continue
		}
		out = append(out, it)
	}
	return out
}

// FilterContacts filtra contactos del tipo dado: la búsqueda coincide contra
// nombre, NIF o email (OR).
func FilterContacts(contacts []entity.Contact, contactType, search string) []entity.Contact {
	q := fold(search)
	out := make([]entity.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Type != contactType {
			continue
		}
		if q != "" && !strings.Contains(fold(c.Name), q) && !strings.Contains(fold(c.NIF), q) && !strings.Contains(fold(c.Email), q) {
			continue
		}
		out = append(out, c)
	}
	return out
}
