package payload

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/giant-seguros/app-backoffice/internal/compositekey"
	"github.com/giant-seguros/app-backoffice/internal/form"
)

var (
	ErrInvalidValue         = errors.New("valor inválido para a conversão")
	ErrReferenceUnavailable = errors.New("lista de referência indisponível")
)

// Coercion converte o valor bruto de um campo no valor enviado à API
type Coercion interface {
	Coerce(raw any, refs form.References) (any, error)
}

// CoercionFunc adapta uma função ao tipo Coercion
type CoercionFunc func(raw any, refs form.References) (any, error)

func (f CoercionFunc) Coerce(raw any, refs form.References) (any, error) {
	return f(raw, refs)
}

// Verbatim copia o valor sem conversão
func Verbatim() Coercion {
	return CoercionFunc(func(raw any, _ form.References) (any, error) {
		return raw, nil
	})
}

// Text envia o valor como texto sem espaços nas pontas; ausente vira ""
func Text() Coercion {
	return CoercionFunc(func(raw any, _ form.References) (any, error) {
		if raw == nil {
			return "", nil
		}
		text, ok := form.AsText(raw)
		if !ok {
			return nil, fmt.Errorf("%w: texto esperado, recebido %T", ErrInvalidValue, raw)
		}
		return strings.TrimSpace(text), nil
	})
}

// Int converte um id textual (ou numérico inteiro) em int64
func Int() Coercion {
	return CoercionFunc(func(raw any, _ form.References) (any, error) {
		return toInt(raw)
	})
}

// Number converte em float64
func Number() Coercion {
	return CoercionFunc(func(raw any, _ form.References) (any, error) {
		n, ok := form.AsNumber(raw)
		if !ok {
			return nil, fmt.Errorf("%w: número esperado, recebido %v", ErrInvalidValue, raw)
		}
		return n, nil
	})
}

// FixedDecimal formata o número com casas decimais fixas, como texto ("150.50").
// Empates arredondam para longe de zero: 0.125 vira "0.13".
func FixedDecimal(places int) Coercion {
	pow := math.Pow10(places)
	return CoercionFunc(func(raw any, _ form.References) (any, error) {
		n, ok := form.AsNumber(raw)
		if !ok {
			return nil, fmt.Errorf("%w: valor monetário esperado, recebido %v", ErrInvalidValue, raw)
		}
		return strconv.FormatFloat(math.Round(n*pow)/pow, 'f', places, 64), nil
	})
}

// Date normaliza a data para o formato do input (2006-01-02)
func Date() Coercion {
	return CoercionFunc(func(raw any, _ form.References) (any, error) {
		d, ok := form.ParseDate(raw)
		if !ok {
			return nil, fmt.Errorf("%w: data esperada, recebido %v", ErrInvalidValue, raw)
		}
		return d.Format(form.DateLayout), nil
	})
}

// BoolEnum codifica um booleano como um de dois valores. Ausente conta como falso.
func BoolEnum(whenTrue, whenFalse any) Coercion {
	return CoercionFunc(func(raw any, _ form.References) (any, error) {
		if raw == nil {
			return whenFalse, nil
		}
		b, ok := form.AsBool(raw)
		if !ok {
			return nil, fmt.Errorf("%w: booleano esperado, recebido %v", ErrInvalidValue, raw)
		}
		if b {
			return whenTrue, nil
		}
		return whenFalse, nil
	})
}

// BinaryFlag codifica verdadeiro=1, falso=0
func BinaryFlag() Coercion {
	return BoolEnum(1, 0)
}

// YesNoFlag codifica verdadeiro=1, falso=2 (sim/não da API de sinistros)
func YesNoFlag() Coercion {
	return BoolEnum(1, 2)
}

// CompositeID resolve um token de compositekey para o id da entidade,
// procurando na lista de referência indicada
func CompositeID(reference string) Coercion {
	return CoercionFunc(func(raw any, refs form.References) (any, error) {
		token, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: token esperado, recebido %T", ErrInvalidValue, raw)
		}
		candidates, ok := refs[reference]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrReferenceUnavailable, reference)
		}
		return compositekey.Decode(token, candidates)
	})
}

// Constant ignora o campo e envia sempre o mesmo valor
func Constant(value any) Coercion {
	return CoercionFunc(func(any, form.References) (any, error) {
		return value, nil
	})
}

func toInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("%w: inteiro esperado, recebido %v", ErrInvalidValue, v)
		}
		return int64(v), nil
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: inteiro esperado, recebido %q", ErrInvalidValue, v)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("%w: inteiro esperado, recebido %T", ErrInvalidValue, raw)
	}
}
