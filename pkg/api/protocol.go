package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - корневой объект, который сервер отправляет клиенту.
// Это полный "снимок" состояния симуляции на момент конца тика.
// Клиент (рендерер) только читает его; прав на мутацию у него нет.
type ServerResponse struct {
	// Type тип сообщения: "INIT" при подключении, дальше "UPDATE".
	Type string `json:"type"`

	// Tick порядковый номер тика движка.
	Tick uint64 `json:"tick"`

	// Cash суммарный заработок сессии.
	Cash float64 `json:"cash"`

	// CashPerMinute скорость дохода за скользящее 60-секундное окно.
	CashPerMinute float64 `json:"cashPerMinute"`

	Spawners    []SpawnerView    `json:"spawners,omitempty"`
	Modifiers   []ModifierView   `json:"modifiers,omitempty"`
	Connections []ConnectionView `json:"connections,omitempty"`
	Items       []ItemView       `json:"items,omitempty"`

	// Draft незавершенное соединение (пока игрок тянет провод).
	Draft *DraftView `json:"draft,omitempty"`

	// Discoveries все открытые комбинации (для журнала открытий).
	Discoveries []DiscoveryView `json:"discoveries,omitempty"`

	// Logs новые сообщения с прошлого снапшота.
	Logs []LogEntry `json:"logs,omitempty"`
}

// PointView - координата на холсте.
type PointView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SpawnerView - DTO спавнера.
type SpawnerView struct {
	ID       string    `json:"id"`
	Pos      PointView `json:"pos"`
	W        float64   `json:"w"`
	H        float64   `json:"h"`
	Resource string    `json:"resource"`
	Emoji    string    `json:"emoji"`

	// SpawnIntervalMs для прогресс-бара "до следующей эмиссии".
	SpawnIntervalMs int64 `json:"spawnIntervalMs"`
}

// ModifierView - DTO модификатора.
type ModifierView struct {
	ID    string    `json:"id"`
	Pos   PointView `json:"pos"`
	W     float64   `json:"w"`
	H     float64   `json:"h"`
	Name  string    `json:"name"`
	Emoji string    `json:"emoji"`

	// PendingCount сколько входов накоплено (сами предметы уже не в пути).
	PendingCount      int   `json:"pendingCount"`
	ProcessIntervalMs int64 `json:"processIntervalMs"`

	// Resolving true, пока комбинация разрешается внешним генератором.
	Resolving bool `json:"resolving,omitempty"`
}

// ConnectionView - DTO соединения. From/To - актуальная геометрия этого тика.
type ConnectionView struct {
	ID         string    `json:"id"`
	SourceID   string    `json:"sourceId"`
	SourceKind string    `json:"sourceKind"`
	DestID     string    `json:"destId,omitempty"`
	DestKind   string    `json:"destKind"`
	From       PointView `json:"from"`
	To         PointView `json:"to"`
}

// DraftView - DTO драг-соединения.
type DraftView struct {
	SourceID   string    `json:"sourceId"`
	SourceKind string    `json:"sourceKind"`
	Cursor     PointView `json:"cursor"`
}

// ItemView - DTO предмета в пути.
type ItemView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	CashValue float64   `json:"cashValue"`
	Pos       PointView `json:"pos"`
	Progress  float64   `json:"progress"`
}

// DiscoveryView - DTO записи журнала открытий.
type DiscoveryView struct {
	Name        string  `json:"name"`
	Emoji       string  `json:"emoji"`
	CashPerItem float64 `json:"cashPerItem"`
	Type        string  `json:"type"`
	Rarity      string  `json:"rarity,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, DISCOVERY, SELL, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Session ID сессии. Проставляется сервером при чтении из сокета,
	// клиенту заполнять его не нужно.
	Session string `json:"session,omitempty"`

	// Action название действия.
	Action string `json:"action"`

	// Payload JSON-объект с данными. Структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// PlacePayload используется для размещения сущностей
// (PLACE_SPAWNER, PLACE_MODIFIER). Type - имя из каталога.
type PlacePayload struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Type string  `json:"type"`
}

// ConnectStartPayload начинает драг соединения от выхода источника.
type ConnectStartPayload struct {
	SourceID   string  `json:"sourceId"`
	SourceKind string  `json:"sourceKind"` // SPAWNER | MODIFIER
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// ConnectUpdatePayload двигает курсор драга (CONNECT_UPDATE).
type ConnectUpdatePayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ConnectCompletePayload завершает драг на приемнике (CONNECT_COMPLETE).
// Для продажи DestKind == "SELL" и DestID пуст.
type ConnectCompletePayload struct {
	DestID   string `json:"destId,omitempty"`
	DestKind string `json:"destKind"` // MODIFIER | SELL
}
