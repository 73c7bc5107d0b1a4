package listing

import (
	"errors"
	"strings"
)

// Mode is the listing strategy currently governing a collection view.
// Exactly one mode is active per controller; switching modes resets the
// page offset.
type Mode interface {
	mode()
}

// List is the plain, unqualified listing mode.
type List struct{}

// Search lists entities matching a free-text term.
type Search struct {
	Term string
}

// Sort lists entities ordered by a named criterion.
type Sort struct {
	Order string
}

// Filter lists entities matching checkbox-style facet selections.
type Filter struct {
	Facets Facets
}

func (List) mode()   {}
func (Search) mode() {}
func (Sort) mode()   {}
func (Filter) mode() {}

// Facets maps a facet group (e.g. "categoria") to the selected values.
type Facets map[string][]string

// IsEmpty reports whether no value is selected in any group.
func (f Facets) IsEmpty() bool {
	for _, values := range f {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// ValidationError is a local rejection: the request is never sent and the
// message is shown inline next to the offending control.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is a local validation rejection.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// User-facing validation messages, kept verbatim from the platform.
const (
	MsgEmptySearchTerm = "Insira um termo para realizar a pesquisa"
	MsgNoFilters       = "Sem filtros selecionados! Por favor, escolha ao menos uma opção para ver resultados."
	MsgNoSortOption    = "Selecione uma opção válida para ordenar"
)

func validateMode(m Mode) (Mode, error) {
	switch m := m.(type) {
	case Search:
		term := strings.TrimSpace(m.Term)
		if term == "" {
			return nil, &ValidationError{Message: MsgEmptySearchTerm}
		}
		return Search{Term: term}, nil
	case Sort:
		if m.Order == "" {
			return nil, &ValidationError{Message: MsgNoSortOption}
		}
		return m, nil
	case Filter:
		if m.Facets.IsEmpty() {
			return nil, &ValidationError{Message: MsgNoFilters}
		}
		return m, nil
	case List:
		return m, nil
	default:
		return nil, errors.New("unknown query mode")
	}
}
