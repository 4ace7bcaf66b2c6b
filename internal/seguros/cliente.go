package seguros

import (
	"github.com/giant-seguros/app-backoffice/internal/form"
	"github.com/giant-seguros/app-backoffice/internal/payload"
	"github.com/giant-seguros/app-backoffice/internal/submission"
)

func obrigatorio(name, label string, kind form.Kind) form.FieldSchema {
	return form.FieldSchema{Name: name, Label: label, Kind: kind, Required: true}
}

func clienteSchema() *form.FormSchema {
	return form.MustSchema(TipoCliente,
		obrigatorio("nome", "Nome completo", form.KindText),
		obrigatorio("data_nascimento", "Data de nascimento", form.KindDate),
		form.FieldSchema{
			Name:        "sexo",
			Label:       "Sexo",
			Kind:        form.KindText,
			Required:    true,
			Default:     "M",
			Constraints: []form.Constraint{form.OneOf(form.MsgInvalidOption, "M", "F")},
		},
		form.FieldSchema{Name: "estado_civil", Label: "Estado civil", Kind: form.KindReference, Reference: RefEstadosCivis, Required: true},
		form.FieldSchema{Name: "nib", Label: "NIB", Kind: form.KindText},
		obrigatorio("nif", "NIF", form.KindText),
		obrigatorio("filiacao_pai", "Filiação (pai)", form.KindText),
		obrigatorio("filiacao_mae", "Filiação (mãe)", form.KindText),
		form.FieldSchema{Name: "naturalidade", Label: "Naturalidade", Kind: form.KindReference, Reference: RefCidades, Composite: true, Required: true},
		form.FieldSchema{Name: "profissao", Label: "Profissão", Kind: form.KindReference, Reference: RefProfissoes, Required: true},
		form.FieldSchema{
			Name:        "renumeracao",
			Label:       "Remuneração",
			Kind:        form.KindNumber,
			Required:    true,
			Constraints: []form.Constraint{form.NonNegative(form.MsgNegative)},
		},
		form.FieldSchema{Name: "tipo", Label: "Tipo de documento", Kind: form.KindReference, Reference: RefTiposDocumento, Required: true},
		obrigatorio("doc_numero", "Número do documento", form.KindText),
		obrigatorio("doc_data_emissao", "Data de emissão", form.KindDate),
		form.FieldSchema{
			Name:        "doc_data_validade",
			Label:       "Data de validade",
			Kind:        form.KindDate,
			Required:    true,
			Constraints: []form.Constraint{form.NotBefore("doc_data_emissao", "A validade não pode ser anterior à emissão")},
		},
		obrigatorio("aut_numero", "Matrícula", form.KindText),
		obrigatorio("aut_data_emissao", "Data de emissão", form.KindDate),
		form.FieldSchema{
			Name:        "aut_data_validade",
			Label:       "Data de validade",
			Kind:        form.KindDate,
			Required:    true,
			Constraints: []form.Constraint{form.NotBefore("aut_data_emissao", "A validade não pode ser anterior à emissão")},
		},
		form.FieldSchema{
			Name:        "telefone",
			Label:       "Telefone",
			Kind:        form.KindNumber,
			Required:    true,
			Constraints: []form.Constraint{form.NonNegative(form.MsgNegative)},
		},
		form.FieldSchema{
			Name:        "telefone_alternativo",
			Label:       "Telefone Alt.",
			Kind:        form.KindNumber,
			Required:    true,
			Constraints: []form.Constraint{form.NonNegative(form.MsgNegative)},
		},
		form.FieldSchema{
			Name:        "email",
			Label:       "E-mail",
			Kind:        form.KindText,
			Required:    true,
			Constraints: []form.Constraint{form.Email(form.MsgInvalidEmail)},
		},
		form.FieldSchema{Name: "caixa_postal", Label: "Caixa Postal", Kind: form.KindText},
		form.FieldSchema{Name: "cidade", Label: "Cidade", Kind: form.KindReference, Reference: RefCidades, Composite: true, Required: true},
		obrigatorio("morada", "Morada", form.KindText),
		obrigatorio("rua", "Rua", form.KindText),
	)
}

func clienteMapping() payload.Mapping {
	return payload.NewMapping("clients").
		MapWith("nome", "nome", payload.Text()).
		MapWith("data_nascimento", "data_nascimento", payload.Date()).
		MapWith("sexo", "sexo", payload.Text()).
		Optional("nib", "nib", payload.Text()).
		MapWith("nif", "nif", payload.Text()).
		MapWith("estado_civil", "estado_civil", payload.Int()).
		MapWith("filiacao_pai", "filiacao_pai", payload.Text()).
		MapWith("filiacao_mae", "filiacao_mae", payload.Text()).
		MapWith("naturalidade", "naturalidade", payload.CompositeID(RefCidades)).
		MapWith("profissao", "profissao", payload.Int()).
		MapWith("renumeracao", "renumeracao", payload.Number()).
		MapWith("tipo", "documentacao.pessoal.tipo", payload.Int()).
		MapWith("doc_numero", "documentacao.pessoal.numero", payload.Text()).
		MapWith("doc_data_emissao", "documentacao.pessoal.data_emissao", payload.Date()).
		MapWith("doc_data_validade", "documentacao.pessoal.data_validade", payload.Date()).
		MapWith("aut_numero", "documentacao.automovel.numero", payload.Text()).
		MapWith("aut_data_emissao", "documentacao.automovel.data_emissao", payload.Date()).
		MapWith("aut_data_validade", "documentacao.automovel.data_validade", payload.Date()).
		MapWith("telefone", "contactos.telefone", payload.Number()).
		MapWith("telefone_alternativo", "contactos.telefone_alternativo", payload.Number()).
		MapWith("email", "contactos.email", payload.Text()).
		Optional("caixa_postal", "contactos.caixa_postal", payload.Text()).
		MapWith("cidade", "endereco.cidade", payload.CompositeID(RefCidades)).
		MapWith("morada", "endereco.morada", payload.Text()).
		MapWith("rua", "endereco.rua", payload.Text()).
		Build()
}

// Cliente é o formulário de cadastro de cliente. A API responde 2xx sem
// status de aplicação, então qualquer 2xx é sucesso.
func Cliente() submission.Definition {
	return submission.Definition{
		Tipo:           TipoCliente,
		Titulo:         "Novo cliente",
		Schema:         clienteSchema(),
		Mapping:        clienteMapping(),
		Endpoint:       "",
		RequireStatus:  false,
		SuccessMessage: "Cliente criado com sucesso",
		FailureMessage: "Não foi possível criar o cliente",
		Invalidates:    []string{RefClientes},
	}
}

// Profissoes é a lista fixa de profissões aceites pela API
func Profissoes() []Item {
	return []Item{
		{ID: 11036, Nome: "Advogado"},
		{ID: 11286, Nome: "Engenheiro(a)"},
		{ID: 11336, Nome: "Arquiteto"},
		{ID: 13863, Nome: "Conta própria"},
	}
}

// TiposDocumento são os documentos de identificação pessoal
func TiposDocumento() []Item {
	return []Item{
		{ID: 1, Nome: "BI"},
		{ID: 2, Nome: "Passaporte"},
	}
}

// Item é uma entrada de lista fixa
type Item struct {
	ID   int64
	Nome string
}
