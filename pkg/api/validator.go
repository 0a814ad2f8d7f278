package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p PlacePayload) Validate() error {
	if p.Type == "" {
		return errors.New("type is required")
	}
	if p.X < 0 || p.Y < 0 {
		return errors.New("position must be non-negative")
	}
	return nil
}

func (p ConnectStartPayload) Validate() error {
	if p.SourceID == "" {
		return errors.New("sourceId is required")
	}
	if p.SourceKind != "SPAWNER" && p.SourceKind != "MODIFIER" {
		return errors.New("sourceKind must be SPAWNER or MODIFIER")
	}
	return nil
}

func (p ConnectCompletePayload) Validate() error {
	switch p.DestKind {
	case "MODIFIER":
		if p.DestID == "" {
			return errors.New("destId is required for MODIFIER destination")
		}
	case "SELL":
		// У зоны продажи нет сущности, destId должен быть пуст
		if p.DestID != "" {
			return errors.New("destId must be empty for SELL destination")
		}
	default:
		return errors.New("destKind must be MODIFIER or SELL")
	}
	return nil
}
