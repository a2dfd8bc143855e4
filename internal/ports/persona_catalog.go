package ports

import "focusboss/internal/domain"

// PersonaCatalog resolves persona definitions
type PersonaCatalog interface {
	List() []domain.Persona
	Lookup(id string) (*domain.Persona, bool)
}
