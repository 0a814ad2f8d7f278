package engine

import "assembly-server/pkg/api"

// BuildState создает полный снапшот симуляции на момент конца тика.
// Порядок всех коллекций - порядок создания сущностей, от тика к тику
// он стабилен.
func (s *GameService) BuildState(msgType string) *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:          msgType,
		Tick:          s.tick,
		Cash:          s.Ledger.Total,
		CashPerMinute: s.Ledger.RatePerMinute,
	}

	for _, sp := range s.Registry.Spawners() {
		resp.Spawners = append(resp.Spawners, api.SpawnerView{
			ID:              sp.ID.String(),
			Pos:             api.PointView{X: sp.Pos.X, Y: sp.Pos.Y},
			W:               sp.Size.W,
			H:               sp.Size.H,
			Resource:        sp.Resource,
			Emoji:           sp.Emoji,
			SpawnIntervalMs: sp.SpawnInterval.Milliseconds(),
		})
	}

	for _, m := range s.Registry.Modifiers() {
		resp.Modifiers = append(resp.Modifiers, api.ModifierView{
			ID:                m.ID.String(),
			Pos:               api.PointView{X: m.Pos.X, Y: m.Pos.Y},
			W:                 m.Size.W,
			H:                 m.Size.H,
			Name:              m.Name,
			Emoji:             m.Emoji,
			PendingCount:      len(m.Pending),
			ProcessIntervalMs: m.ProcessInterval.Milliseconds(),
			Resolving:         m.Resolving,
		})
	}

	for _, c := range s.Registry.Connections() {
		resp.Connections = append(resp.Connections, api.ConnectionView{
			ID:         c.ID.String(),
			SourceID:   c.SourceID.String(),
			SourceKind: c.SourceKind,
			DestID:     c.DestID.String(),
			DestKind:   c.DestKind,
			From:       api.PointView{X: c.From.X, Y: c.From.Y},
			To:         api.PointView{X: c.To.X, Y: c.To.Y},
		})
	}

	for _, it := range s.Registry.Items() {
		resp.Items = append(resp.Items, api.ItemView{
			ID:        it.ID.String(),
			Name:      it.Name,
			Emoji:     it.Emoji,
			CashValue: it.CashValue,
			Pos:       api.PointView{X: it.Pos.X, Y: it.Pos.Y},
			Progress:  it.Progress,
		})
	}

	if draft := s.Registry.Draft(); draft != nil {
		resp.Draft = &api.DraftView{
			SourceID:   draft.SourceID.String(),
			SourceKind: draft.SourceKind,
			Cursor:     api.PointView{X: draft.Cursor.X, Y: draft.Cursor.Y},
		}
	}

	if s.journal != nil {
		for _, rec := range s.journal.Records() {
			resp.Discoveries = append(resp.Discoveries, api.DiscoveryView{
				Name:        rec.Template.Name,
				Emoji:       rec.Template.Emoji,
				CashPerItem: rec.Template.CashPerItem,
				Type:        rec.Template.Type,
				Rarity:      rec.Template.Rarity,
				Category:    rec.Template.Category,
			})
		}
	}

	// Копия логов, чтобы не было гонки данных
	if len(s.Logs) > 0 {
		logsCopy := make([]api.LogEntry, len(s.Logs))
		copy(logsCopy, s.Logs)
		resp.Logs = logsCopy
	}

	return resp
}
