package server

import (
	"encoding/json"
	"net/http"

	"assembly-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка.
// Чтение идет мимо тикового цикла: формально это гонка, но эндпоинты
// read-only и нужны только для ручной отладки.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/stats", h.handleStats)
	mux.HandleFunc("/debug/state", h.handleState)
}

// /debug/stats - сводка по симуляции
func (h *DebugHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	type Stats struct {
		Tick          uint64  `json:"tick"`
		Spawners      int     `json:"spawners"`
		Modifiers     int     `json:"modifiers"`
		Connections   int     `json:"connections"`
		ItemsInFlight int     `json:"items_in_flight"`
		ItemsHeld     int     `json:"items_held"`
		Cash          float64 `json:"cash"`
		CashPerMinute float64 `json:"cash_per_minute"`
		Discoveries   int     `json:"discoveries"`
		Subscribers   int     `json:"subscribers"`
	}

	writeJSON(w, Stats{
		Tick:          h.Service.Tick(),
		Spawners:      len(h.Service.Registry.Spawners()),
		Modifiers:     len(h.Service.Registry.Modifiers()),
		Connections:   len(h.Service.Registry.Connections()),
		ItemsInFlight: len(h.Service.Registry.Items()),
		ItemsHeld:     h.Service.Registry.HeldCount(),
		Cash:          h.Service.Ledger.Total,
		CashPerMinute: h.Service.Ledger.RatePerMinute,
		Discoveries:   h.Service.DiscoveryCount(),
		Subscribers:   h.Service.Hub.SubscriberCount(),
	})
}

// /debug/state - полный снапшот, тот же формат, что уходит клиентам
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.BuildState("DEBUG"))
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
