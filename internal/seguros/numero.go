package seguros

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const tamanhoSufixo = 6

// NumeroApolice gera um número provisório de apólice: prefixo seguido de seis
// caracteres base 36 em maiúsculas (ex.: "AUP-K3Z9QD")
func NumeroApolice(prefixo string) string {
	id := uuid.New()
	sufixo := strconv.FormatUint(binary.BigEndian.Uint64(id[:8]), 36)
	if len(sufixo) < tamanhoSufixo {
		sufixo = strings.Repeat("0", tamanhoSufixo-len(sufixo)) + sufixo
	}
	return prefixo + strings.ToUpper(sufixo[len(sufixo)-tamanhoSufixo:])
}
