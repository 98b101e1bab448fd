// Package cache implementa o armazenamento em memória usado para evitar
// consultas repetidas ao banco dentro de uma mesma sessão do dashboard.
// A instância é criada uma vez no boot e injetada nos serviços; não há
// estado global de pacote.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL é a validade padrão das entradas com expiração.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    any
	storedAt time.Time
	expires  bool
}

// Store é um mapa chave -> valor protegido por mutex. Handlers HTTP rodam em
// goroutines concorrentes, então o acesso precisa ser sincronizado mesmo que
// o consumidor original fosse single-threaded.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration

	// now é substituível em testes
	now func() time.Time
}

func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get retorna o valor armazenado sem checar validade.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set grava o valor sobrescrevendo qualquer entrada anterior.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{value: value, storedAt: s.now()}
}

// GetWithTTL retorna o valor somente se a entrada ainda estiver dentro da
// validade; entradas vencidas são removidas e contam como cache miss.
func (s *Store) GetWithTTL(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}

	if e.expires && s.now().Sub(e.storedAt) > s.ttl {
		delete(s.entries, key)
		return nil, false
	}

	return e.value, true
}

// SetWithTTL grava o valor com carimbo de tempo para expiração.
func (s *Store) SetWithTTL(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{value: value, storedAt: s.now(), expires: true}
}

// ClearKey remove uma entrada específica (invalidação pontual).
func (s *Store) ClearKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// ClearAll esvazia o cache por completo; chamado quando o usuário sai do
// dashboard.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]entry)
}

// PurgeExpired remove as entradas com TTL vencido e retorna quantas foram
// descartadas. Usado pelo sweeper agendado, já que o store não tem política
// de eviction própria.
func (s *Store) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	cutoff := s.now()
	for key, e := range s.entries {
		if e.expires && cutoff.Sub(e.storedAt) > s.ttl {
			delete(s.entries, key)
			removed++
		}
	}

	return removed
}

// Len retorna o número de entradas presentes, vencidas ou não.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
