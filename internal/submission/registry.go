package submission

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Instance é um formulário aberto
type Instance struct {
	ID         string
	Tipo       string
	Controller *Controller
	// Falhas guarda as listas auxiliares que não puderam ser carregadas na abertura
	Falhas    map[string]string
	CreatedAt time.Time
}

// Registry guarda as instâncias abertas por id. Instâncias sem uso por mais
// que o TTL são descartadas, e o tamanho é limitado.
type Registry struct {
	instances *expirable.LRU[string, *Instance]
}

func NewRegistry(size int, ttl time.Duration) *Registry {
	if size <= 0 {
		size = 1000
	}
	return &Registry{
		instances: expirable.NewLRU[string, *Instance](size, nil, ttl),
	}
}

// Open registra um controlador e devolve a instância com um id novo
func (r *Registry) Open(tipo string, controller *Controller, falhas map[string]string) *Instance {
	inst := &Instance{
		ID:         uuid.NewString(),
		Tipo:       tipo,
		Controller: controller,
		Falhas:     falhas,
		CreatedAt:  time.Now(),
	}
	r.instances.Add(inst.ID, inst)
	return inst
}

// Get devolve a instância e renova o seu prazo
func (r *Registry) Get(id string) (*Instance, bool) {
	inst, ok := r.instances.Get(id)
	if !ok {
		return nil, false
	}
	r.instances.Add(id, inst)
	return inst, true
}

// Close remove a instância; devolve false se ela não existia
func (r *Registry) Close(id string) bool {
	return r.instances.Remove(id)
}

func (r *Registry) Len() int {
	return r.instances.Len()
}
