package actions

import "assembly-server/internal/engine/handlers"

// HandleInit не меняет состояние: клиент получит полный снапшот
// со следующим тиком, команда нужна как триггер первой отрисовки.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Welcome to the assembly floor 🏭",
		MsgType: "INFO",
	}, nil
}
