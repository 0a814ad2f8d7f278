package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"assembly-server/internal/agent"
	"assembly-server/internal/discovery"
	"assembly-server/internal/engine"
	"assembly-server/internal/infrastructure/storage"
	"assembly-server/internal/server"
	"assembly-server/internal/version"
	"assembly-server/pkg/catalog"
	"assembly-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var portFlag string
	var dbPath string
	var catalogPath string
	var runAgent bool
	flag.StringVar(&portFlag, "port", "", "HTTP port (overrides ASSEMBLY_PORT)")
	flag.StringVar(&dbPath, "db", "discoveries.db", "Path to discovery journal (empty to disable persistence)")
	flag.StringVar(&catalogPath, "catalog", "", "Path to YAML catalog override")
	flag.BoolVar(&runAgent, "agent", false, "Run the headless builder agent")
	flag.Parse()

	logger.Log.Info("Starting Assembly Server...")
	logger.Log.Info(version.String())

	port := portFlag
	if port == "" {
		port = os.Getenv("ASSEMBLY_PORT")
	}
	if port == "" {
		port = "8080"
	}

	// 2. Каталог шаблонов
	cat := catalog.Default()
	if catalogPath != "" {
		if err := cat.ApplyFile(catalogPath); err != nil {
			logger.Log.WithError(err).Fatal("Failed to load catalog override")
		}
		logger.Log.WithField("path", catalogPath).Info("Catalog override applied")
	}

	// 3. Журнал открытий: SQLite + in-memory кеш поверх
	var store *storage.DiscoveryStore
	if dbPath != "" {
		var err error
		store, err = storage.Open(dbPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to open discovery journal")
		}
	} else {
		logger.Log.Warn("Discovery persistence disabled, cache is memory-only")
	}

	cache := discovery.NewCache(persister(store))

	// 4. Резолвер комбинаций. Без ASSEMBLY_GEN_ENDPOINT работает
	// детерминированный оффлайн-генератор.
	genClient := discovery.NewClientFromEnv()
	if genClient == nil {
		logger.Log.Info("No generator endpoint configured, using offline fallback")
	}
	resolver := discovery.NewResolver(cache, genClient)

	// 5. Инициализация ядра
	gameService := engine.NewService(engine.NewConfig(), engine.SystemClock(), cat, resolver, cache)
	gameService.Start()

	if runAgent {
		go agent.NewBuilder("agent_builder", gameService).Run()
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 6. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	gameService.Stop()
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Log.WithError(err).Warn("Failed to close discovery journal")
		}
	}

	logger.Log.Info("Done.")
}

// persister превращает возможно-nil *DiscoveryStore в discovery.Persister.
// Типизированный nil внутри интерфейса - не nil-интерфейс.
func persister(store *storage.DiscoveryStore) discovery.Persister {
	if store == nil {
		return nil
	}
	return store
}
