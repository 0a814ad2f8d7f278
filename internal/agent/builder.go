package agent

import (
	"encoding/json"

	"assembly-server/internal/domain"
	"assembly-server/internal/engine"
	"assembly-server/pkg/api"
	"assembly-server/pkg/logger"
)

// Builder - headless-агент, собирающий стартовую производственную цепочку:
// спавнер Water -> модификатор Heat -> зона продажи. Этот код является
// примером ВНЕШНЕГО клиента: агент подключается к хабу как обычная сессия,
// читает снапшоты и отправляет те же команды, что и игрок через WebSocket.
//
// Агент не лезет в реестр напрямую: все его знания о мире - из снапшотов.
type Builder struct {
	SessionID string
	Service   *engine.GameService
	Inbox     chan api.ServerResponse

	// Флаги отправленных шагов: снапшоты приходят чаще, чем применяются
	// команды, без них агент настроил бы дубликаты.
	sentSpawner  bool
	sentModifier bool
	sentFeed     bool
	sentSell     bool
}

func NewBuilder(sessionID string, service *engine.GameService) *Builder {
	logger.Log.WithField("session", sessionID).Info("Creating builder agent")
	return &Builder{
		SessionID: sessionID,
		Service:   service,
		// Агент регистрируется в хабе как обычный клиент
		Inbox: service.Hub.Register(sessionID),
	}
}

// Run запускает цикл жизни агента. Должен быть запущен в горутине.
func (b *Builder) Run() {
	defer b.Service.Hub.Unregister(b.SessionID)

	for state := range b.Inbox {
		if b.step(state) {
			logger.Log.WithField("session", b.SessionID).Info("Builder agent finished its chain")
			return
		}
	}
}

// step делает один шаг плана по текущему снапшоту.
// Возвращает true, когда цепочка собрана.
func (b *Builder) step(state api.ServerResponse) bool {
	if len(state.Spawners) == 0 {
		if !b.sentSpawner {
			b.sendPlace(domain.ActionPlaceSpawner, "Water", 120, 300)
			b.sentSpawner = true
		}
		return false
	}

	if len(state.Modifiers) == 0 {
		if !b.sentModifier {
			b.sendPlace(domain.ActionPlaceModifier, "Heat", 520, 300)
			b.sentModifier = true
		}
		return false
	}

	if len(state.Connections) == 0 {
		if !b.sentFeed {
			b.sendConnect(state.Spawners[0].ID, domain.EndpointSpawner, state.Modifiers[0].ID, domain.EndpointModifier)
			b.sentFeed = true
		}
		return false
	}

	if len(state.Connections) == 1 {
		if !b.sentSell {
			b.sendConnect(state.Modifiers[0].ID, domain.EndpointModifier, "", domain.EndpointSell)
			b.sentSell = true
		}
		return false
	}

	return true
}

// --- Хелперы для отправки команд на сервер ---

func (b *Builder) sendCommand(action domain.ActionType, payload interface{}) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Log.WithError(err).Error("Builder failed to marshal payload")
		return
	}

	b.Service.ProcessCommand(api.ClientCommand{
		Session: b.SessionID,
		Action:  action.String(),
		Payload: payloadBytes,
	})
}

func (b *Builder) sendPlace(action domain.ActionType, typeName string, x, y float64) {
	b.sendCommand(action, api.PlacePayload{X: x, Y: y, Type: typeName})
}

// sendConnect отправляет пару CONNECT_START + CONNECT_COMPLETE.
// Канал команд сохраняет порядок, ждать между ними не нужно.
func (b *Builder) sendConnect(sourceID, sourceKind, destID, destKind string) {
	b.sendCommand(domain.ActionConnectStart, api.ConnectStartPayload{
		SourceID:   sourceID,
		SourceKind: sourceKind,
	})
	b.sendCommand(domain.ActionConnectComplete, api.ConnectCompletePayload{
		DestID:   destID,
		DestKind: destKind,
	})
}
