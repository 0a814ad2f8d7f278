package actions

import (
	"fmt"

	"assembly-server/internal/domain"
	"assembly-server/internal/engine/handlers"
	"assembly-server/pkg/api"
)

// HandlePlaceSpawner размещает спавнер ресурса из каталога.
// Неизвестное имя ресурса - ошибка валидации, реестр не трогается.
func HandlePlaceSpawner(ctx handlers.Context, p api.PlacePayload) (handlers.Result, error) {
	res, ok := ctx.Catalog.Resource(p.Type)
	if !ok {
		return handlers.Result{}, fmt.Errorf("unknown resource type %q", p.Type)
	}

	sp := &domain.Spawner{
		ID:       domain.NewEntityID(),
		Pos:      domain.Point{X: p.X, Y: p.Y},
		Size:     domain.SpawnerSize,
		Resource: res.Name,
		Emoji:    res.Emoji,
		// Первая эмиссия через полный интервал после размещения
		LastSpawn:     ctx.Now,
		SpawnInterval: res.SpawnInterval,
	}
	ctx.Registry.AddSpawner(sp)

	return handlers.Result{
		Msg:     fmt.Sprintf("Placed %s spawner %s", res.Name, res.Emoji),
		MsgType: "INFO",
	}, nil
}

// HandlePlaceModifier размещает модификатор из каталога.
func HandlePlaceModifier(ctx handlers.Context, p api.PlacePayload) (handlers.Result, error) {
	tpl, ok := ctx.Catalog.Modifier(p.Type)
	if !ok {
		return handlers.Result{}, fmt.Errorf("unknown modifier type %q", p.Type)
	}

	m := &domain.Modifier{
		ID:              domain.NewEntityID(),
		Pos:             domain.Point{X: p.X, Y: p.Y},
		Size:            domain.ModifierSize,
		Name:            tpl.Name,
		Emoji:           tpl.Emoji,
		LastProcess:     ctx.Now,
		ProcessInterval: tpl.ProcessInterval,
	}
	ctx.Registry.AddModifier(m)

	return handlers.Result{
		Msg:     fmt.Sprintf("Placed %s modifier %s", tpl.Name, tpl.Emoji),
		MsgType: "INFO",
	}, nil
}
