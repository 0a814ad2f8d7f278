package engine

import (
	"context"
	"fmt"
	"time"

	"assembly-server/internal/domain"
	"assembly-server/internal/engine/handlers"
	"assembly-server/internal/engine/handlers/actions"
	"assembly-server/internal/network"
	"assembly-server/pkg/api"
	"assembly-server/pkg/catalog"
	"assembly-server/pkg/logger"
)

// Resolver разрешает комбинацию (входы + модификатор) в шаблон предмета.
// Вызов может висеть на сети сколько угодно: движок дергает его только
// из отдельной горутины и никогда из тикового цикла.
type Resolver interface {
	Resolve(ctx context.Context, inputs []string, modifier string) (domain.ItemTemplate, bool)
}

// Journal отдает журнал открытий для снапшота.
type Journal interface {
	Records() []domain.DiscoveryRecord
}

// GameService - владелец состояния симуляции. Все мутации реестра
// происходят в одной горутине RunGameLoop: команды, события резолвера
// и тики сериализуются через select.
type GameService struct {
	Registry *domain.Registry
	Ledger   domain.CashLedger

	Logs []api.LogEntry

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	cfg      Config
	clock    Clock
	catalog  *catalog.Catalog
	resolver Resolver
	journal  Journal

	handlers map[domain.ActionType]handlers.HandlerFunc

	// resolvedChan доставляет результаты асинхронного разрешения
	// обратно в тиковый цикл.
	resolvedChan chan domain.ResolutionEvent

	tick         uint64
	lastTickAt   time.Time
	lastSampleAt time.Time

	stopChan chan struct{}
	doneChan chan struct{}
}

func NewService(cfg Config, clk Clock, cat *catalog.Catalog, resolver Resolver, journal Journal) *GameService {
	now := clk.Now()

	s := &GameService{
		Registry:     domain.NewRegistry(),
		Logs:         []api.LogEntry{},
		CommandChan:  make(chan domain.InternalCommand, 100),
		Hub:          network.NewBroadcaster(),
		cfg:          cfg,
		clock:        clk,
		catalog:      cat,
		resolver:     resolver,
		journal:      journal,
		handlers:     make(map[domain.ActionType]handlers.HandlerFunc),
		resolvedChan: make(chan domain.ResolutionEvent, 100),
		lastTickAt:   now,
		lastSampleAt: now,
		stopChan:     make(chan struct{}),
		doneChan:     make(chan struct{}),
	}

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionPlaceSpawner] = handlers.WithPayload(actions.HandlePlaceSpawner)
	s.handlers[domain.ActionPlaceModifier] = handlers.WithPayload(actions.HandlePlaceModifier)
	s.handlers[domain.ActionConnectStart] = handlers.WithPayload(actions.HandleConnectStart)
	s.handlers[domain.ActionConnectUpdate] = handlers.WithPayload(actions.HandleConnectUpdate)
	s.handlers[domain.ActionConnectComplete] = handlers.WithPayload(actions.HandleConnectComplete)
	s.handlers[domain.ActionConnectCancel] = handlers.WithEmptyPayload(actions.HandleConnectCancel)
}

func (s *GameService) Start() {
	go s.RunGameLoop()
}

// Stop останавливает цикл и дожидается его завершения.
func (s *GameService) Stop() {
	close(s.stopChan)
	<-s.doneChan
}

// ProcessCommand принимает команду от внешнего мира (WebSocket или агент)
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithField("action", externalCmd.Action).Warn("Unknown action")
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Session: externalCmd.Session,
		Payload: externalCmd.Payload,
	}
}

// --- GAME LOOP ---

func (s *GameService) RunGameLoop() {
	logger.Log.WithField("tick_rate", s.cfg.TickRate).Info("Game loop started")

	ticker := time.NewTicker(s.cfg.TickPeriod())
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			logger.Log.Info("Game loop stopped")
			return

		case cmd := <-s.CommandChan:
			s.executeCommand(cmd)

		case ev := <-s.resolvedChan:
			s.applyResolution(ev)

		case <-ticker.C:
			s.Advance(s.clock.Now())
			s.publishUpdate()
		}
	}
}

// executeCommand выполняет хендлер и пишет логи
func (s *GameService) executeCommand(cmd domain.InternalCommand) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Registry:  s.Registry,
		Catalog:   s.catalog,
		Now:       s.clock.Now(),
		SellPoint: s.cfg.SellPoint(),
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithError(err).WithField("action", cmd.Action.String()).Warn("Command rejected")
		s.AddLog(err.Error(), "ERROR")
		return
	}

	// Команда INIT дополнительно получает немедленный полный снапшот:
	// клиент не должен ждать следующего тика для первой отрисовки.
	if cmd.Action == domain.ActionInit && cmd.Session != "" {
		s.Hub.SendTo(cmd.Session, *s.BuildState("INIT"))
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.AddLog(result.Msg, msgType)
	}
}

// publishUpdate рассылает снапшот конца тика всем подписчикам
func (s *GameService) publishUpdate() {
	if s.Hub.SubscriberCount() > 0 {
		s.Hub.Broadcast(*s.BuildState("UPDATE"))
	}

	// Логи доставлены (или никому не нужны), очищаем буфер
	s.Logs = s.Logs[:0]
}

func (s *GameService) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// Tick возвращает номер текущего тика (для /debug/stats).
func (s *GameService) Tick() uint64 {
	return s.tick
}

// DiscoveryCount возвращает размер журнала открытий (для /debug/stats).
func (s *GameService) DiscoveryCount() int {
	if s.journal == nil {
		return 0
	}
	return len(s.journal.Records())
}
