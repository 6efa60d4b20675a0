package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInvalidDate  = errors.New("data inválida, use o formato AAAA-MM-DD")
	ErrInvalidRange = errors.New("dataInicio não pode ser posterior a dataFim")
)
