package coalesce

import "sync"

// Group дедуплицирует одновременные выборки по одинаковому ключу.
// Первый вызов FetchOrJoin с ключом выполняет fn, остальные вызовы с тем же
// ключом ждут его результат. Заменяет глобальную переменную "текущий in-flight
// запрос": владение ключами явное и потокобезопасное.
type Group struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	done chan struct{}
	val  interface{}
	err  error
}

// NewGroup создает пустую группу
func NewGroup() *Group {
	return &Group{calls: make(map[string]*call)}
}

// FetchOrJoin выполняет fn для ключа key или присоединяется к уже идущему вызову
// Возвращает результат fn и признак joined (true, если вызов был присоединён)
func (g *Group) FetchOrJoin(key string, fn func() (interface{}, error)) (interface{}, error, bool) {
	g.mu.Lock()
	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		<-c.done
		return c.val, c.err, true
	}

	c := &call{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	c.val, c.err = fn()

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
	close(c.done)

	return c.val, c.err, false
}
