package session

import "errors"

var (
	// ErrBusy rejects a second save/load/delete while one is in flight.
	ErrBusy = errors.New("outra operação em curso")
	// ErrNoWarehouse rejects a save with no warehouse label, before
	// any network call.
	ErrNoWarehouse = errors.New("defina o nome do armazém antes de salvar")
	// ErrEmptyCatalog rejects a save with nothing to persist.
	ErrEmptyCatalog = errors.New("sem produtos")
	// ErrEmptySnapshot signals a load that matched nothing; the
	// working session is left untouched.
	ErrEmptySnapshot = errors.New("contagem vazia")
	// ErrUnknownItem rejects a count for a code outside the catalog.
	ErrUnknownItem = errors.New("código desconhecido")
	// ErrStaleResponse marks a load whose response arrived after the
	// session had already been replaced; the response is discarded.
	ErrStaleResponse = errors.New("resposta obsoleta descartada")
)
