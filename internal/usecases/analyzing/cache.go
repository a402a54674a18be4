package analyzing

import (
	"sync"
	"time"

	"github.com/vfg2006/working-capital-api/internal/domain"
)

// DatasetCache memoiza o dataset enriquecido por um TTL explícito.
// É um objeto injetado no serviço, com invalidação explícita, em vez de
// estado ambiente de módulo: o tempo de vida do cache fica testável e
// não vaza entre requisições concorrentes.
type DatasetCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	entries   []*domain.EntitySnapshot
	storedAt  time.Time
	populated bool

	// now é substituível nos testes
	now func() time.Time
}

// NewDatasetCache cria um cache com o TTL informado. TTL zero ou
// negativo desliga a memoização (toda leitura é miss).
func NewDatasetCache(ttl time.Duration) *DatasetCache {
	return &DatasetCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get devolve o conteúdo memoizado enquanto o TTL não expirou
func (c *DatasetCache) Get() ([]*domain.EntitySnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.populated || c.ttl <= 0 {
		return nil, false
	}

	if c.now().Sub(c.storedAt) >= c.ttl {
		c.entries = nil
		c.populated = false
		return nil, false
	}

	return c.entries, true
}

// Set substitui o conteúdo memoizado e reinicia o TTL
func (c *DatasetCache) Set(entries []*domain.EntitySnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = entries
	c.storedAt = c.now()
	c.populated = true
}

// Invalidate descarta o conteúdo memoizado imediatamente
func (c *DatasetCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.populated = false
}
