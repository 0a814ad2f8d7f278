package domain

import "encoding/json"

// InternalCommand - команда для движка после парсинга.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType      // Число, а не строка
	Session string          // ID сессии, приславшей команду
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
