package persona

// Catalog exposes persona retrieval for the agent factory and HTTP handlers.
type Catalog interface {
	List() []Persona
	FindByID(id string) (Persona, bool)
}

// MemoryCatalog implements Catalog with an in-memory slice loaded once at
// process start.
type MemoryCatalog struct {
	items []Persona
}

// NewMemoryCatalog returns a MemoryCatalog preloaded with the supplied personas.
func NewMemoryCatalog(items []Persona) *MemoryCatalog {
	return &MemoryCatalog{items: append([]Persona(nil), items...)}
}

// List returns the predefined persona list.
func (c *MemoryCatalog) List() []Persona {
	return append([]Persona(nil), c.items...)
}

// FindByID looks up a persona by identifier.
func (c *MemoryCatalog) FindByID(id string) (Persona, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return Persona{}, false
}
