package seguros

import (
	"github.com/giant-seguros/app-backoffice/internal/form"
	"github.com/giant-seguros/app-backoffice/internal/payload"
	"github.com/giant-seguros/app-backoffice/internal/submission"
)

func apoliceSchema() *form.FormSchema {
	return form.MustSchema(TipoApolice,
		form.FieldSchema{Name: "cliente", Label: "Cliente", Kind: form.KindReference, Reference: RefClientes, Required: true},
		form.FieldSchema{Name: "veiculo", Label: "Veículo", Kind: form.KindReference, Reference: RefVeiculos, Required: true},
		form.FieldSchema{Name: "tipo", Label: "Tipo de apólice", Kind: form.KindReference, Reference: RefTiposApolice, Required: true},
		form.FieldSchema{Name: "numero", Label: "Número", Kind: form.KindText, Required: true},
		form.FieldSchema{Name: "tipologia", Label: "Tipologia", Kind: form.KindReference, Reference: RefTipologias, Required: true},
		form.FieldSchema{
			Name:            "valor",
			Label:           "Valor",
			Kind:            form.KindNumber,
			Required:        true,
			RequiredMessage: "O valor é obrigatório",
			TypeMessage:     "O valor deve ser um número",
			Constraints:     []form.Constraint{form.NonNegative("O valor não pode ser negativo")},
		},
		form.FieldSchema{
			Name:        "data_inicio",
			Label:       "Data de início",
			Kind:        form.KindDate,
			Required:    true,
			Constraints: []form.Constraint{form.NotBeforeToday(form.MsgDateBeforeToday)},
		},
		form.FieldSchema{
			Name:     "data_fim",
			Label:    "Data de fim",
			Kind:     form.KindDate,
			Required: true,
			Constraints: []form.Constraint{
				form.NotBeforeToday(form.MsgDateBeforeToday),
				form.NotBefore("data_inicio", "A data de fim não pode ser anterior à data de início"),
			},
		},
		form.FieldSchema{
			Name:        "desconto",
			Label:       "Desconto",
			Kind:        form.KindNumber,
			Required:    true,
			TypeMessage: "O desconto deve ser um número",
			Constraints: []form.Constraint{form.NonNegative(form.MsgNegative)},
		},
	)
}

func apoliceMapping() payload.Mapping {
	return payload.NewMapping("apolices").
		MapWith("cliente", "cliente", payload.Int()).
		MapWith("veiculo", "veiculo", payload.Int()).
		MapWith("tipo", "tipo", payload.Int()).
		MapWith("numero", "numero", payload.Text()).
		MapWith("tipologia", "tipologia", payload.Int()).
		MapWith("valor", "valor", payload.FixedDecimal(2)).
		MapWith("data_inicio", "data_inicio", payload.Date()).
		MapWith("data_fim", "data_fim", payload.Date()).
		MapWith("desconto", "desconto", payload.Number()).
		Build()
}

// Apolice é o formulário de emissão de apólice
func Apolice(prefixoNumero string) submission.Definition {
	return submission.Definition{
		Tipo:           TipoApolice,
		Titulo:         "Nova apólice",
		Schema:         apoliceSchema(),
		Mapping:        apoliceMapping(),
		Endpoint:       "apolices",
		RequireStatus:  true,
		SuccessMessage: "Apólice criada com sucesso",
		FailureMessage: "Não foi possível Registar a apólice",
		Redirect:       "/apolices",
		Invalidates:    []string{RefApolices},
		Initial: func() map[string]any {
			return map[string]any{"numero": NumeroApolice(prefixoNumero)}
		},
	}
}
