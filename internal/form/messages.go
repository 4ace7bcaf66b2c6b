package form

// Mensagens padrão mostradas junto ao campo
const (
	MsgRequired           = "Campo obrigatório"
	MsgNotNumber          = "Deve ser um número"
	MsgInvalidDate        = "Data inválida"
	MsgInvalidBoolean     = "Valor inválido"
	MsgInvalidText        = "Texto inválido"
	MsgInvalidOption      = "Opção inválida"
	MsgOptionsUnavailable = "Lista de opções indisponível"
	MsgNegative           = "Número negativo"
	MsgInvalidEmail       = "Formato de e-mail inválido"
	MsgDateBeforeToday    = "A data não pode ser anterior a hoje"
	MsgTooLong            = "Texto demasiado longo"
)
