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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	cancelEnquiryHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/cancel_enquiry"
	checkAvailabilityHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/check_availability"
	connectCalendarHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/connect_calendar"
	createEnquiryHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/create_enquiry"
	disconnectCalendarHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/disconnect_calendar"
	getAvailabilityHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/get_availability"
	getCustomerEnquiriesHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/get_customer_enquiries"
	getEnquiryHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/get_enquiry"
	getScheduleHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/get_schedule"
	getSupplierEnquiriesHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/get_supplier_enquiries"
	loginHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/login"
	respondEnquiryHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/respond_enquiry"
	updateScheduleHandler "github.com/m04kA/PSM-BookingService/internal/api/handlers/update_schedule"
	"github.com/m04kA/PSM-BookingService/internal/api/middleware"
	"github.com/m04kA/PSM-BookingService/internal/config"
	"github.com/m04kA/PSM-BookingService/internal/domain"
	"github.com/m04kA/PSM-BookingService/internal/infra/cache/availabilitygrid"
	calendarConnRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/calendarconn"
	enquiryRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/enquiry"
	supplierRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/supplier"
	calendarAPIClient "github.com/m04kA/PSM-BookingService/internal/integrations/calendarapi"
	authService "github.com/m04kA/PSM-BookingService/internal/service/auth"
	calendarsyncService "github.com/m04kA/PSM-BookingService/internal/service/calendarsync"
	enquiriesService "github.com/m04kA/PSM-BookingService/internal/service/enquiries"
	notifyService "github.com/m04kA/PSM-BookingService/internal/service/notify"
	scheduleService "github.com/m04kA/PSM-BookingService/internal/service/schedule"
	checkAvailabilityUC "github.com/m04kA/PSM-BookingService/internal/usecase/check_availability"
	createEnquiryUC "github.com/m04kA/PSM-BookingService/internal/usecase/create_enquiry"
	getAvailabilityUC "github.com/m04kA/PSM-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/PSM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PSM-BookingService/pkg/logger"
	"github.com/m04kA/PSM-BookingService/pkg/metrics"
	"github.com/m04kA/PSM-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/PSM-BookingService/pkg/txmanager"
)

func main() {
	// Секреты из .env переопределяют config.toml
	_ = godotenv.Load()

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

	log.Info("Starting PSM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Подключаемся к Redis (кеш сеток доступности, опционально)
	var gridCache getAvailabilityUC.GridCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		gridCache = availabilitygrid.New(redisClient, time.Duration(cfg.Redis.GridTTL)*time.Second)
		log.Info("Availability grid cache enabled (redis=%s ttl=%ds)", cfg.Redis.Addr, cfg.Redis.GridTTL)
	} else {
		log.Info("Availability grid cache disabled, grids computed per request")
	}

	// Инициализируем клиента календарного провайдера
	calendarClient := calendarAPIClient.NewClient(
		cfg.Calendar.BaseURL,
		cfg.Calendar.ClientID,
		cfg.Calendar.ClientSecret,
		cfg.Calendar.RedirectURL,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
	)
	log.Info("Calendar client initialized (provider=%s timeout=%ds)", cfg.Calendar.BaseURL, cfg.Calendar.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		supplierRepository     *supplierRepo.Repository
		enquiryRepository      *enquiryRepo.Repository
		calendarConnRepository *calendarConnRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		supplierRepository = supplierRepo.NewRepository(wrappedDB)
		enquiryRepository = enquiryRepo.NewRepository(wrappedDB)
		calendarConnRepository = calendarConnRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		supplierRepository = supplierRepo.NewRepository(db)
		enquiryRepository = enquiryRepo.NewRepository(db)
		calendarConnRepository = calendarConnRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(supplierRepository, log)
	enquiriesSvc := enquiriesService.NewService(enquiryRepository, log)
	authSvc := authService.NewService(
		supplierRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)
	notifySvc := notifyService.NewService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.Enabled,
		log,
	)
	calendarSyncSvc := calendarsyncService.NewService(
		supplierRepository,
		calendarConnRepository,
		calendarClient,
		&calendarsyncService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(supplierRepository, gridCache, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(supplierRepository, log)
	createEnquiryUseCase := createEnquiryUC.NewUseCase(
		enquiryRepository,
		supplierRepository,
		notifySvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createEnquiry := createEnquiryHandler.NewHandler(createEnquiryUseCase, log)
	getEnquiry := getEnquiryHandler.NewHandler(enquiriesSvc, log)
	cancelEnquiry := cancelEnquiryHandler.NewHandler(enquiriesSvc, log)
	getCustomerEnquiries := getCustomerEnquiriesHandler.NewHandler(enquiriesSvc, log)
	getSupplierEnquiries := getSupplierEnquiriesHandler.NewHandler(enquiriesSvc, log)
	respondEnquiry := respondEnquiryHandler.NewHandler(enquiriesSvc, log)
	connectCalendar := connectCalendarHandler.NewHandler(calendarSyncSvc, log)
	disconnectCalendar := disconnectCalendarHandler.NewHandler(calendarSyncSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация поставщика
	api.HandleFunc("/suppliers/login", login.Handle).Methods(http.MethodPost)

	// Расписание поставщика
	api.HandleFunc("/suppliers/{supplierId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Сетка доступности за период
	api.HandleFunc("/suppliers/{supplierId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Проверка одного слота
	api.HandleFunc("/suppliers/{supplierId}/availability/check", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// CUSTOMER ROUTES (требуют X-User-ID header)
	// ============================================================

	customer := api.PathPrefix("").Subrouter()
	customer.Use(middleware.Auth)

	// Создание заявки на бронирование
	customer.HandleFunc("/enquiries", createEnquiry.Handle).Methods(http.MethodPost)

	// Получение заявки по reference
	customer.HandleFunc("/enquiries/{reference}", getEnquiry.Handle).Methods(http.MethodGet)

	// Отмена заявки покупателем
	customer.HandleFunc("/enquiries/{reference}/cancel", cancelEnquiry.Handle).Methods(http.MethodPatch)

	// Заявки покупателя
	customer.HandleFunc("/customers/{customerId}/enquiries", getCustomerEnquiries.Handle).Methods(http.MethodGet)

	// ============================================================
	// SUPPLIER ROUTES (требуют JWT поставщика)
	// ============================================================

	supplier := api.PathPrefix("/suppliers/{supplierId}").Subrouter()
	supplier.Use(middleware.SupplierAuth(cfg.Auth.JWTSecret))

	// Обновление расписания
	supplier.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// Заявки поставщика
	supplier.HandleFunc("/enquiries", getSupplierEnquiries.Handle).Methods(http.MethodGet)

	// Ответ поставщика на заявку
	supplier.HandleFunc("/enquiries/{reference}/respond", respondEnquiry.Handle).Methods(http.MethodPatch)

	// Подключение внешнего календаря
	supplier.HandleFunc("/calendar/connect", connectCalendar.Handle).Methods(http.MethodPost)

	// Отключение внешнего календаря
	supplier.HandleFunc("/calendar", disconnectCalendar.Handle).Methods(http.MethodDelete)

	// Запускаем фоновые задачи
	scheduler := cron.New()

	if cfg.Sync.Enabled {
		_, err := scheduler.AddFunc(cfg.Sync.Schedule, func() {
			calendarSyncSvc.SyncAll(context.Background())
		})
		if err != nil {
			log.Fatal("Failed to schedule calendar sync: %v", err)
		}
		log.Info("Calendar sync scheduled (%s)", cfg.Sync.Schedule)
	}

	// Заявки с прошедшей датой праздника помечаются expired раз в сутки
	_, err = scheduler.AddFunc("@midnight", func() {
		today := time.Now().Format(domain.DateFormat)
		expired, err := enquiryRepository.ExpirePending(context.Background(), today)
		if err != nil {
			log.Error("Failed to expire stale enquiries: %v", err)
			return
		}
		if expired > 0 {
			log.Info("Expired %d stale enquiries", expired)
		}
	})
	if err != nil {
		log.Fatal("Failed to schedule enquiry expiry: %v", err)
	}

	scheduler.Start()
	defer scheduler.Stop()

	// CORS для браузерных клиентов маркетплейса
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-User-ID"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
