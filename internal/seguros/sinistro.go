package seguros

import (
	"github.com/giant-seguros/app-backoffice/internal/form"
	"github.com/giant-seguros/app-backoffice/internal/payload"
	"github.com/giant-seguros/app-backoffice/internal/submission"
)

func sinistroSchema() *form.FormSchema {
	return form.MustSchema(TipoSinistro,
		form.FieldSchema{Name: "apolice", Label: "Apólice", Kind: form.KindReference, Reference: RefApolices, Composite: true, Required: true},
		form.FieldSchema{Name: "tomador", Label: "Tomador", Kind: form.KindReference, Reference: RefClientes, Required: true},
		form.FieldSchema{Name: "tomador_veiculo", Label: "Veículo do tomador", Kind: form.KindReference, Reference: RefVeiculos, Composite: true, Required: true},
		form.FieldSchema{Name: "data", Label: "Data", Kind: form.KindDate, Required: true},
		form.FieldSchema{
			Name:        "descricao",
			Label:       "Descrição",
			Kind:        form.KindText,
			Required:    true,
			Constraints: []form.Constraint{form.MaxLength(5000, form.MsgTooLong)},
		},
		form.FieldSchema{Name: "observacoes_segurado", Label: "Observações do segurado", Kind: form.KindText},
		form.FieldSchema{Name: "observacoes_tomador", Label: "Observações do tomador", Kind: form.KindText},
		form.FieldSchema{Name: "danos_materiais_veiculos", Label: "Danos materiais no veículo", Kind: form.KindBoolean, Default: false},
		form.FieldSchema{Name: "danos_materiais_objectos", Label: "Objectos danificados", Kind: form.KindBoolean, Default: false},
		form.FieldSchema{Name: "ferimentos", Label: "Ferimentos", Kind: form.KindBoolean, Default: false},
		form.FieldSchema{Name: "cidade", Label: "Cidade", Kind: form.KindReference, Reference: RefCidades, Composite: true, Required: true},
		obrigatorio("morada", "Morada", form.KindText),
		obrigatorio("rua", "Rua", form.KindText),
	)
}

// As duas codificações de booleano são as que a API de sinistros espera:
// ferimentos usa 1/0 e os danos materiais usam 1/2 (sim/não).
func sinistroMapping() payload.Mapping {
	return payload.NewMapping("sinistros").
		MapWith("apolice", "apolice", payload.CompositeID(RefApolices)).
		MapWith("tomador", "tomador", payload.Int()).
		MapWith("tomador_veiculo", "tomador_veiculo", payload.CompositeID(RefVeiculos)).
		MapWith("data", "data", payload.Date()).
		MapWith("descricao", "descricao", payload.Text()).
		MapWith("observacoes_segurado", "observacoes_segurado", payload.Text()).
		MapWith("observacoes_tomador", "observacoes_tomador", payload.Text()).
		MapWith("danos_materiais_veiculos", "danos_materiais_veiculos", payload.YesNoFlag()).
		MapWith("danos_materiais_objectos", "danos_materiais_objectos", payload.YesNoFlag()).
		MapWith("ferimentos", "ferimentos", payload.BinaryFlag()).
		MapWith("cidade", "cidade", payload.CompositeID(RefCidades)).
		MapWith("morada", "morada", payload.Text()).
		MapWith("rua", "rua", payload.Text()).
		Build()
}

// Sinistro é o formulário de registro de sinistro
func Sinistro() submission.Definition {
	return submission.Definition{
		Tipo:           TipoSinistro,
		Titulo:         "Registar sinistro",
		Schema:         sinistroSchema(),
		Mapping:        sinistroMapping(),
		Endpoint:       "sinistros",
		RequireStatus:  true,
		SuccessMessage: "Sinistro registrado com sucesso",
		FailureMessage: "Não foi possível Registar o sinistro",
		Redirect:       "/sinistros",
	}
}
