package services

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache é a interface para serviços de cache
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Delete(key string)
	Clear()
	Size() int
}

// LRUCache é um cache LRU thread-safe com expiração por entrada
type LRUCache[V any] struct {
	lru *expirable.LRU[string, V]
}

// NewLRUCache cria um cache com a capacidade e o TTL especificados
func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	if capacity <= 0 {
		capacity = 64
	}
	return &LRUCache[V]{lru: expirable.NewLRU[string, V](capacity, nil, ttl)}
}

// Get recupera um valor do cache; entradas expiradas não são devolvidas
func (c *LRUCache[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

// Set adiciona ou atualiza um valor, renovando o prazo
func (c *LRUCache[V]) Set(key string, value V) {
	c.lru.Add(key, value)
}

func (c *LRUCache[V]) Delete(key string) {
	c.lru.Remove(key)
}

// Clear limpa todo o cache
func (c *LRUCache[V]) Clear() {
	c.lru.Purge()
}

// Size retorna o número de itens no cache
func (c *LRUCache[V]) Size() int {
	return c.lru.Len()
}
