package seguros

import (
	"fmt"

	"github.com/giant-seguros/app-backoffice/internal/compositekey"
	"github.com/giant-seguros/app-backoffice/internal/models"
)

// As funções abaixo definem as partes do rótulo de cada token, na ordem dos
// seletores: cidade "3-luanda", veículo "7-toyota/corolla/ld-12-34-aa" e
// apólice "1-aup-x1/joão".

func CandidatosClientes(list []models.Cliente) []compositekey.Candidate {
	out := make([]compositekey.Candidate, 0, len(list))
	for _, c := range list {
		out = append(out, compositekey.Candidate{ID: c.ID, Labels: []string{c.Nome}})
	}
	return out
}

func CandidatosVeiculos(list []models.Veiculo) []compositekey.Candidate {
	out := make([]compositekey.Candidate, 0, len(list))
	for _, v := range list {
		out = append(out, compositekey.Candidate{
			ID:      v.ID,
			Labels:  []string{v.Marca, v.Modelo, v.Matricula},
			Display: fmt.Sprintf("%s %s (%s)", v.Marca, v.Modelo, v.Matricula),
		})
	}
	return out
}

func CandidatosTiposApolice(list []models.TipoApolice) []compositekey.Candidate {
	out := make([]compositekey.Candidate, 0, len(list))
	for _, t := range list {
		out = append(out, compositekey.Candidate{ID: t.ID, Labels: []string{t.Nome}})
	}
	return out
}

func CandidatosTipologias(list []models.Tipologia) []compositekey.Candidate {
	out := make([]compositekey.Candidate, 0, len(list))
	for _, t := range list {
		out = append(out, compositekey.Candidate{ID: t.ID, Labels: []string{t.Tipologia}})
	}
	return out
}

func CandidatosCidades(list []models.Cidade) []compositekey.Candidate {
	out := make([]compositekey.Candidate, 0, len(list))
	for _, c := range list {
		out = append(out, compositekey.Candidate{ID: c.ID, Labels: []string{c.Nome}})
	}
	return out
}

func CandidatosEstadosCivis(list []models.EstadoCivil) []compositekey.Candidate {
	out := make([]compositekey.Candidate, 0, len(list))
	for _, e := range list {
		out = append(out, compositekey.Candidate{ID: e.ID, Labels: []string{e.Nome}})
	}
	return out
}

func CandidatosApolices(list []models.Apolice) []compositekey.Candidate {
	out := make([]compositekey.Candidate, 0, len(list))
	for _, a := range list {
		cliente := a.Cliente.String()
		out = append(out, compositekey.Candidate{
			ID:      a.ID,
			Labels:  []string{a.Numero, cliente},
			Display: fmt.Sprintf("%s(%s)", cliente, a.Numero),
		})
	}
	return out
}

// CandidatosItens converte uma lista fixa
func CandidatosItens(list []Item) []compositekey.Candidate {
	out := make([]compositekey.Candidate, 0, len(list))
	for _, it := range list {
		out = append(out, compositekey.Candidate{ID: it.ID, Labels: []string{it.Nome}})
	}
	return out
}
