package domain

import "github.com/google/uuid"

// EntityID - идентификатор любой сущности симуляции (спавнер, модификатор,
// соединение, предмет). Строковый UUID: сущности создаются игроком в рантайме,
// упаковывать индексы в биты здесь нечего.
type EntityID string

// NilEntityID - аналог nil для отсутствующей сущности.
const NilEntityID EntityID = ""

// NewEntityID генерирует новый уникальный идентификатор.
func NewEntityID() EntityID {
	return EntityID(uuid.NewString())
}

func (id EntityID) String() string {
	return string(id)
}

// IsNil проверяет, является ли идентификатор пустым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}
