package engine

import "assembly-server/internal/domain"

// refreshRoutes пересчитывает геометрию всех соединений.
// Выход - середина правого края источника, вход - середина левого края
// приемника (или центр зоны продажи). Сущности сегодня неподвижны,
// но роутер на это не полагается и считает заново каждый тик.
func (s *GameService) refreshRoutes() {
	for _, c := range s.Registry.Connections() {
		from, ok := s.sourceAnchor(c)
		if !ok {
			// Источник исчез: схлопываем пару в ноль, предметы на таком
			// соединении доедут мгновенно и будут обработаны прибытием
			c.From, c.To = domain.Point{}, domain.Point{}
			continue
		}

		to, ok := s.destAnchor(c)
		if !ok {
			c.From, c.To = domain.Point{}, domain.Point{}
			continue
		}

		c.From, c.To = from, to
	}
}

func (s *GameService) sourceAnchor(c *domain.Connection) (domain.Point, bool) {
	switch c.SourceKind {
	case domain.EndpointSpawner:
		if sp := s.Registry.Spawner(c.SourceID); sp != nil {
			return domain.RightCenter(sp.Pos, sp.Size), true
		}
	case domain.EndpointModifier:
		if m := s.Registry.Modifier(c.SourceID); m != nil {
			return domain.RightCenter(m.Pos, m.Size), true
		}
	}
	return domain.Point{}, false
}

func (s *GameService) destAnchor(c *domain.Connection) (domain.Point, bool) {
	switch c.DestKind {
	case domain.EndpointModifier:
		if m := s.Registry.Modifier(c.DestID); m != nil {
			return domain.LeftCenter(m.Pos, m.Size), true
		}
	case domain.EndpointSell:
		return s.cfg.SellPoint(), true
	}
	return domain.Point{}, false
}
