package actions

import (
	"fmt"

	"assembly-server/internal/domain"
	"assembly-server/internal/engine/handlers"
	"assembly-server/pkg/api"
)

// HandleConnectStart начинает драг соединения от выхода источника.
// Существующий драг молча заменяется новым: клиент мог потерять
// CONNECT_CANCEL при обрыве связи.
func HandleConnectStart(ctx handlers.Context, p api.ConnectStartPayload) (handlers.Result, error) {
	sourceID := domain.EntityID(p.SourceID)

	switch p.SourceKind {
	case domain.EndpointSpawner:
		if ctx.Registry.Spawner(sourceID) == nil {
			return handlers.Result{}, fmt.Errorf("spawner %s not found", p.SourceID)
		}
	case domain.EndpointModifier:
		if ctx.Registry.Modifier(sourceID) == nil {
			return handlers.Result{}, fmt.Errorf("modifier %s not found", p.SourceID)
		}
	}

	if ctx.Registry.Outbound(sourceID) != nil {
		return handlers.Result{}, fmt.Errorf("source %s already has an outbound connection", p.SourceID)
	}

	ctx.Registry.SetDraft(&domain.DraftConnection{
		SourceID:   sourceID,
		SourceKind: p.SourceKind,
		Cursor:     domain.Point{X: p.X, Y: p.Y},
	})
	return handlers.EmptyResult(), nil
}

// HandleConnectUpdate двигает курсор драга. Без драга - no-op:
// запоздавшие апдейты после cancel приходят регулярно.
func HandleConnectUpdate(ctx handlers.Context, p api.ConnectUpdatePayload) (handlers.Result, error) {
	draft := ctx.Registry.Draft()
	if draft == nil {
		return handlers.EmptyResult(), nil
	}
	draft.Cursor = domain.Point{X: p.X, Y: p.Y}
	return handlers.EmptyResult(), nil
}

// HandleConnectComplete завершает драг на приемнике и создает соединение.
func HandleConnectComplete(ctx handlers.Context, p api.ConnectCompletePayload) (handlers.Result, error) {
	draft := ctx.Registry.Draft()
	if draft == nil {
		return handlers.Result{}, fmt.Errorf("no connection drag in progress")
	}

	destID := domain.EntityID(p.DestID)
	if p.DestKind == domain.EndpointModifier {
		if ctx.Registry.Modifier(destID) == nil {
			ctx.Registry.ClearDraft()
			return handlers.Result{}, fmt.Errorf("modifier %s not found", p.DestID)
		}
		if destID == draft.SourceID {
			ctx.Registry.ClearDraft()
			return handlers.Result{}, fmt.Errorf("cannot connect %s to itself", p.DestID)
		}
	}

	conn := &domain.Connection{
		ID:         domain.NewEntityID(),
		SourceID:   draft.SourceID,
		SourceKind: draft.SourceKind,
		DestID:     destID,
		DestKind:   p.DestKind,
		Speed:      domain.DefaultTravelSpeed,
	}

	// Начальная геометрия, чтобы соединение не мигало нулевой парой
	// до первого прохода роутера.
	conn.From, conn.To = connectionAnchors(ctx, conn)

	ctx.Registry.AddConnection(conn)
	ctx.Registry.ClearDraft()

	if p.DestKind == domain.EndpointSell {
		return handlers.Result{Msg: "Connected to sell zone 💰", MsgType: "INFO"}, nil
	}
	return handlers.Result{Msg: "Connection established", MsgType: "INFO"}, nil
}

// HandleConnectCancel сбрасывает драг.
func HandleConnectCancel(ctx handlers.Context) (handlers.Result, error) {
	ctx.Registry.ClearDraft()
	return handlers.EmptyResult(), nil
}

// connectionAnchors вычисляет пару точек соединения: выход - правый край
// источника, вход - левый край приемника (или центр зоны продажи).
// Ту же геометрию каждый тик пересчитывает роутер движка.
func connectionAnchors(ctx handlers.Context, c *domain.Connection) (domain.Point, domain.Point) {
	var from, to domain.Point

	switch c.SourceKind {
	case domain.EndpointSpawner:
		if sp := ctx.Registry.Spawner(c.SourceID); sp != nil {
			from = domain.RightCenter(sp.Pos, sp.Size)
		}
	case domain.EndpointModifier:
		if m := ctx.Registry.Modifier(c.SourceID); m != nil {
			from = domain.RightCenter(m.Pos, m.Size)
		}
	}

	switch c.DestKind {
	case domain.EndpointModifier:
		if m := ctx.Registry.Modifier(c.DestID); m != nil {
			to = domain.LeftCenter(m.Pos, m.Size)
		}
	case domain.EndpointSell:
		to = ctx.SellPoint
	}

	return from, to
}
