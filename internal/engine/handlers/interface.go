package handlers

import (
	"encoding/json"
	"time"

	"assembly-server/internal/domain"
	"assembly-server/pkg/catalog"
)

// Context передает хендлеру состояние симуляции.
// Все ссылки мутабельны: хендлер выполняется внутри тикового цикла
// и имеет эксклюзивный доступ к реестру.
type Context struct {
	Registry *domain.Registry
	Catalog  *catalog.Catalog

	// Now - время движка на момент команды (из его часов, не time.Now).
	Now time.Time

	// SellPoint - точка, в которую роутер ведет соединения с DestKind=SELL.
	SellPoint domain.Point
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, SELL, DISCOVERY, ERROR)
}

// HandlerFunc - это контракт для любой команды (PLACE_SPAWNER, CONNECT_START...).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
