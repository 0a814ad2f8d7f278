package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionPlaceSpawner
	ActionPlaceModifier
	ActionConnectStart
	ActionConnectUpdate
	ActionConnectComplete
	ActionConnectCancel
	// В будущем: ActionRemoveEntity, ActionSellAll...
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":             ActionInit,
	"PLACE_SPAWNER":    ActionPlaceSpawner,
	"PLACE_MODIFIER":   ActionPlaceModifier,
	"CONNECT_START":    ActionConnectStart,
	"CONNECT_UPDATE":   ActionConnectUpdate,
	"CONNECT_COMPLETE": ActionConnectComplete,
	"CONNECT_CANCEL":   ActionConnectCancel,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:            "INIT",
	ActionPlaceSpawner:    "PLACE_SPAWNER",
	ActionPlaceModifier:   "PLACE_MODIFIER",
	ActionConnectStart:    "CONNECT_START",
	ActionConnectUpdate:   "CONNECT_UPDATE",
	ActionConnectComplete: "CONNECT_COMPLETE",
	ActionConnectCancel:   "CONNECT_CANCEL",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Нечувствительность к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
