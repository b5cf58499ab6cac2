package ingesting

import "errors"

// Erros específicos do contexto de ingestão de rankings
var (
	// ErrReconcileFailed indica erro de armazenamento ao gravar snapshot ou entradas
	ErrReconcileFailed = errors.New("falha ao reconciliar snapshot de ranking")

	// ErrInvalidDate indica data fora do formato yyyy-mm-dd
	ErrInvalidDate = errors.New("data inválida para ingestão")
)
