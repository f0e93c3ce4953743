package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	allocateUnitsHandler "github.com/campora/PMS-SchedulerService/internal/api/handlers/allocate_units"
	cancelDragHandler "github.com/campora/PMS-SchedulerService/internal/api/handlers/cancel_drag"
	deletePreferencesHandler "github.com/campora/PMS-SchedulerService/internal/api/handlers/delete_preferences"
	dropActivityHandler "github.com/campora/PMS-SchedulerService/internal/api/handlers/drop_activity"
	evaluateDropHandler "github.com/campora/PMS-SchedulerService/internal/api/handlers/evaluate_drop"
	getGridHandler "github.com/campora/PMS-SchedulerService/internal/api/handlers/get_grid"
	getPreferencesHandler "github.com/campora/PMS-SchedulerService/internal/api/handlers/get_preferences"
	openSessionHandler "github.com/campora/PMS-SchedulerService/internal/api/handlers/open_session"
	refreshGridHandler "github.com/campora/PMS-SchedulerService/internal/api/handlers/refresh_grid"
	startDragHandler "github.com/campora/PMS-SchedulerService/internal/api/handlers/start_drag"
	updatePreferencesHandler "github.com/campora/PMS-SchedulerService/internal/api/handlers/update_preferences"
	"github.com/campora/PMS-SchedulerService/internal/api/middleware"
	"github.com/campora/PMS-SchedulerService/internal/config"
	"github.com/campora/PMS-SchedulerService/internal/domain"
	preferencesRepo "github.com/campora/PMS-SchedulerService/internal/infra/storage/preferences"
	bookingServiceClient "github.com/campora/PMS-SchedulerService/internal/integrations/bookingservice"
	directoryServiceClient "github.com/campora/PMS-SchedulerService/internal/integrations/directoryservice"
	plannerService "github.com/campora/PMS-SchedulerService/internal/service/planner"
	preferencesService "github.com/campora/PMS-SchedulerService/internal/service/preferences"
	allocateUnitsUC "github.com/campora/PMS-SchedulerService/internal/usecase/allocate_units"
	buildGridUC "github.com/campora/PMS-SchedulerService/internal/usecase/build_grid"
	moveActivityUC "github.com/campora/PMS-SchedulerService/internal/usecase/move_activity"
	"github.com/campora/PMS-SchedulerService/pkg/dbmetrics"
	"github.com/campora/PMS-SchedulerService/pkg/logger"
	"github.com/campora/PMS-SchedulerService/pkg/metrics"
	"github.com/campora/PMS-SchedulerService/pkg/simpletxmanager"
	"github.com/campora/PMS-SchedulerService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PMS-SchedulerService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (настройки отображения)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	directoryClient := directoryServiceClient.NewClient(
		cfg.DirectoryService.URL,
		time.Duration(cfg.DirectoryService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BookingService=%s timeout=%ds, DirectoryService=%s timeout=%ds)",
		cfg.BookingService.URL, cfg.BookingService.Timeout, cfg.DirectoryService.URL, cfg.DirectoryService.Timeout)

	// Инициализируем репозиторий настроек (с метриками или без)
	var prefsRepository *preferencesRepo.Repository

	// Интерфейс для transaction manager (используется в сервисе настроек)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		prefsRepository = preferencesRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		prefsRepository = preferencesRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	prefsService := preferencesService.NewService(prefsRepository, txMgr, log)

	planner := plannerService.NewPlanner(
		domain.DropRules{SkillFilterEnabled: cfg.Scheduler.SkillFilterEnabled},
		time.Duration(cfg.Scheduler.SessionTTLMinutes)*time.Minute,
		time.Duration(cfg.Scheduler.RefreshDebounceMS)*time.Millisecond,
		log,
	)
	log.Info("Planner initialized (skill_filter=%t, session_ttl=%dm, refresh_debounce=%dms)",
		cfg.Scheduler.SkillFilterEnabled, cfg.Scheduler.SessionTTLMinutes, cfg.Scheduler.RefreshDebounceMS)

	// Инициализируем use cases
	buildGridUseCase := buildGridUC.NewUseCase(
		bookingClient,
		directoryClient,
		prefsService,
		planner,
		log,
	)

	moveActivityUseCase := moveActivityUC.NewUseCase(
		bookingClient,
		planner,
		time.Duration(cfg.Scheduler.PersistTimeoutSeconds)*time.Second,
		log,
	)

	allocateUnitsUseCase := allocateUnitsUC.NewUseCase(bookingClient, log)

	// Инициализируем handlers
	openSession := openSessionHandler.NewHandler(buildGridUseCase, log)
	refreshGrid := refreshGridHandler.NewHandler(buildGridUseCase, log)
	getGrid := getGridHandler.NewHandler(planner, log)
	startDrag := startDragHandler.NewHandler(planner, log)
	evaluateDrop := evaluateDropHandler.NewHandler(planner, log)
	dropActivity := dropActivityHandler.NewHandler(moveActivityUseCase, log)
	cancelDrag := cancelDragHandler.NewHandler(planner, log)
	allocateUnits := allocateUnitsHandler.NewHandler(allocateUnitsUseCase, log)
	getPreferences := getPreferencesHandler.NewHandler(prefsService, log)
	updatePreferences := updatePreferencesHandler.NewHandler(prefsService, log)
	deletePreferences := deletePreferencesHandler.NewHandler(prefsService, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все операции планировщика требуют X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сессии планирования ---
	// Открытие сессии и построение сетки
	protected.HandleFunc("/sessions", openSession.Handle).Methods(http.MethodPost)

	// Текущее состояние сетки
	protected.HandleFunc("/sessions/{sessionId}/grid", getGrid.Handle).Methods(http.MethodGet)

	// Обновление сетки после смены фильтров
	protected.HandleFunc("/sessions/{sessionId}/refresh", refreshGrid.Handle).Methods(http.MethodPost)

	// --- Перетаскивание ---
	// Начало перетаскивания активности
	protected.HandleFunc("/sessions/{sessionId}/drag", startDrag.Handle).Methods(http.MethodPost)

	// Проверка целевой ячейки при наведении
	protected.HandleFunc("/sessions/{sessionId}/drag/target", evaluateDrop.Handle).Methods(http.MethodGet)

	// Подтверждение перемещения
	protected.HandleFunc("/sessions/{sessionId}/drop", dropActivity.Handle).Methods(http.MethodPost)

	// Отмена перетаскивания
	protected.HandleFunc("/sessions/{sessionId}/drag", cancelDrag.Handle).Methods(http.MethodDelete)

	// --- Распределение по средствам размещения ---
	protected.HandleFunc("/groups/{groupId}/unit-assignments", allocateUnits.Handle).Methods(http.MethodPost)

	// --- Настройки отображения ---
	protected.HandleFunc("/users/{userId}/preferences", getPreferences.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/preferences", updatePreferences.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/users/{userId}/preferences", deletePreferences.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
