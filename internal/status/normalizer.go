package status

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var semAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar prepara um nome de status para comparação: caixa alta, sem
// acentos e com espaços internos colapsados. Usada somente para casar nomes
// contra a tabela de transições; valores persistidos mantêm a grafia exata.
func Normalizar(s string) string {
	up := strings.ToUpper(s)
	if out, _, err := transform.String(semAcentos, up); err == nil {
		up = out
	}
	return strings.Join(strings.Fields(up), " ")
}
