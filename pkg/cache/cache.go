package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry[K comparable, V any] struct {
	key        K
	value      V
	expiration time.Time
}

// LRUCache потокобезопасный LRU-кэш с TTL на запись.
type LRUCache[K comparable, V any] struct {
	capacity int
	ttl      time.Duration

	mu    sync.Mutex
	ll    *list.List
	items map[K]*list.Element
	now   func() time.Time
	// epoch растёт при каждом Delete
	epoch uint64
}

func NewLRUCache[K comparable, V any](capacity int, ttl time.Duration) *LRUCache[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		items:    make(map[K]*list.Element),
		now:      time.Now,
	}
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	ele, ok := c.items[key]
	if !ok {
		return zero, false
	}

	ent := ele.Value.(*entry[K, V])
	if c.now().After(ent.expiration) {
		c.removeElement(ele)
		return zero, false
	}
	c.ll.MoveToFront(ele)
	return ent.value, true
}

func (c *LRUCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// Epoch возвращает счётчик удалений. Снимается до чтения из источника
// и передаётся в SetIfUnchanged.
func (c *LRUCache[K, V]) Epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}

// SetIfUnchanged записывает значение, только если после epoch не было ни одного Delete.
// Иначе значение могло устареть, и запись пропускается.
func (c *LRUCache[K, V]) SetIfUnchanged(key K, value V, epoch uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != epoch {
		return false
	}
	c.set(key, value)
	return true
}

func (c *LRUCache[K, V]) set(key K, value V) {
	expiration := c.now().Add(c.ttl)
	if ele, ok := c.items[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[K, V])
		ent.value = value
		ent.expiration = expiration
		return
	}

	ele := c.ll.PushFront(&entry[K, V]{key: key, value: value, expiration: expiration})
	c.items[key] = ele

	if c.ll.Len() > c.capacity {
		c.removeOldest()
	}
}

// Delete удаляет ключ, если он есть, и сдвигает epoch даже для отсутствующего ключа.
func (c *LRUCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++

	if ele, ok := c.items[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start запускает фоновую очистку просроченных записей до отмены контекста.
func (c *LRUCache[K, V]) Start(ctx context.Context) error {
	c.StartJanitor(ctx)
	return nil
}

func (c *LRUCache[K, V]) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache[K, V]) removeOldest() {
	if ele := c.ll.Back(); ele != nil {
		c.removeElement(ele)
	}
}

func (c *LRUCache[K, V]) removeElement(e *list.Element) {
	c.ll.Remove(e)
	delete(c.items, e.Value.(*entry[K, V]).key)
}

func (c *LRUCache[K, V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry[K, V]).expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
