package domain

// Registry - реестр всех сущностей симуляции. Владелец - тиковый цикл
// движка (single-writer); никакой внутренней синхронизации нет намеренно.
// Порядок добавления сохраняется: обход коллекций детерминирован,
// снапшоты и фазы тика не зависят от порядка итерации map.
type Registry struct {
	spawners    map[EntityID]*Spawner
	modifiers   map[EntityID]*Modifier
	connections map[EntityID]*Connection

	// items - предметы в пути. Предметы, принятые модификатором,
	// переезжают в held до момента потребления.
	items map[EntityID]*Item
	held  map[EntityID]*Item

	spawnerOrder    []EntityID
	modifierOrder   []EntityID
	connectionOrder []EntityID
	itemOrder       []EntityID

	// draft - текущее драг-соединение, максимум одно.
	draft *DraftConnection
}

// NewRegistry создает пустой реестр.
func NewRegistry() *Registry {
	return &Registry{
		spawners:    make(map[EntityID]*Spawner),
		modifiers:   make(map[EntityID]*Modifier),
		connections: make(map[EntityID]*Connection),
		items:       make(map[EntityID]*Item),
		held:        make(map[EntityID]*Item),
	}
}

// --- СПАВНЕРЫ ---

func (r *Registry) AddSpawner(s *Spawner) {
	r.spawners[s.ID] = s
	r.spawnerOrder = append(r.spawnerOrder, s.ID)
}

func (r *Registry) Spawner(id EntityID) *Spawner {
	return r.spawners[id]
}

// Spawners возвращает спавнеры в порядке размещения.
func (r *Registry) Spawners() []*Spawner {
	out := make([]*Spawner, 0, len(r.spawnerOrder))
	for _, id := range r.spawnerOrder {
		out = append(out, r.spawners[id])
	}
	return out
}

// --- МОДИФИКАТОРЫ ---

func (r *Registry) AddModifier(m *Modifier) {
	r.modifiers[m.ID] = m
	r.modifierOrder = append(r.modifierOrder, m.ID)
}

func (r *Registry) Modifier(id EntityID) *Modifier {
	return r.modifiers[id]
}

func (r *Registry) Modifiers() []*Modifier {
	out := make([]*Modifier, 0, len(r.modifierOrder))
	for _, id := range r.modifierOrder {
		out = append(out, r.modifiers[id])
	}
	return out
}

// --- СОЕДИНЕНИЯ ---

func (r *Registry) AddConnection(c *Connection) {
	r.connections[c.ID] = c
	r.connectionOrder = append(r.connectionOrder, c.ID)
}

func (r *Registry) Connection(id EntityID) *Connection {
	return r.connections[id]
}

func (r *Registry) Connections() []*Connection {
	out := make([]*Connection, 0, len(r.connectionOrder))
	for _, id := range r.connectionOrder {
		out = append(out, r.connections[id])
	}
	return out
}

// Outbound возвращает исходящее соединение источника.
// У каждого источника не больше одного выхода (инвариант завершения драга).
func (r *Registry) Outbound(sourceID EntityID) *Connection {
	for _, id := range r.connectionOrder {
		if c := r.connections[id]; c.SourceID == sourceID {
			return c
		}
	}
	return nil
}

// --- ПРЕДМЕТЫ ---

func (r *Registry) AddItem(it *Item) {
	r.items[it.ID] = it
	r.itemOrder = append(r.itemOrder, it.ID)
}

func (r *Registry) Item(id EntityID) *Item {
	return r.items[id]
}

// Items возвращает предметы в пути в порядке создания.
func (r *Registry) Items() []*Item {
	out := make([]*Item, 0, len(r.itemOrder))
	for _, id := range r.itemOrder {
		if it, ok := r.items[id]; ok {
			out = append(out, it)
		}
	}
	return out
}

// RemoveItem убирает предмет из пути (продажа или потеря соединения).
func (r *Registry) RemoveItem(id EntityID) {
	delete(r.items, id)
	r.compactItemOrder()
}

// HoldItem переносит предмет из пути во входной буфер модификатора.
// Предмет продолжает существовать до потребления (имена нужны резолверу).
func (r *Registry) HoldItem(id EntityID) {
	it, ok := r.items[id]
	if !ok {
		return
	}
	delete(r.items, id)
	r.held[id] = it
	r.compactItemOrder()
}

// TakeHeld потребляет предмет из входного буфера.
func (r *Registry) TakeHeld(id EntityID) *Item {
	it := r.held[id]
	delete(r.held, id)
	return it
}

// HeldCount возвращает размер входного буфера (для /debug/stats).
func (r *Registry) HeldCount() int {
	return len(r.held)
}

// compactItemOrder выбрасывает из порядка ID, которых больше нет в пути.
// Делается лениво при каждом удалении; предметов в пути немного.
func (r *Registry) compactItemOrder() {
	alive := r.itemOrder[:0]
	for _, id := range r.itemOrder {
		if _, ok := r.items[id]; ok {
			alive = append(alive, id)
		}
	}
	r.itemOrder = alive
}

// --- ДРАГ-СОЕДИНЕНИЕ ---

func (r *Registry) SetDraft(d *DraftConnection) {
	r.draft = d
}

func (r *Registry) Draft() *DraftConnection {
	return r.draft
}

func (r *Registry) ClearDraft() {
	r.draft = nil
}
