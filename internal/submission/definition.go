// Package submission coordena o ciclo de vida de um formulário aberto:
// edição, validação, transformação e o envio único à API da seguradora.
package submission

import (
	"github.com/giant-seguros/app-backoffice/internal/form"
	"github.com/giant-seguros/app-backoffice/internal/payload"
)

// Definition reúne tudo o que distingue um tipo de formulário. O pipeline é o
// mesmo para todos; só os dados mudam.
type Definition struct {
	Tipo    string
	Titulo  string
	Schema  *form.FormSchema
	Mapping payload.Mapping

	// Endpoint de criação, relativo à URL da API ("" é a raiz)
	Endpoint string
	// RequireStatus exige {"status": "200"} no corpo; sem ele qualquer 2xx é sucesso
	RequireStatus bool

	SuccessMessage string
	FailureMessage string
	Redirect       string

	// Invalidates nomeia as listas auxiliares que deixam de estar atualizadas
	// depois de um envio bem-sucedido
	Invalidates []string

	// Initial devolve os valores de um formulário recém-aberto. Valores derivados
	// (ex.: número da apólice) são gerados aqui, uma vez por instância.
	Initial func() map[string]any
}

// InitialValues aplica os defaults do schema e depois Initial
func (d Definition) InitialValues() map[string]any {
	values := d.Schema.Defaults()
	if d.Initial != nil {
		for k, v := range d.Initial() {
			values[k] = v
		}
	}
	return values
}

// References lista as listas auxiliares que o formulário precisa
func (d Definition) References() []string {
	return d.Schema.References()
}
