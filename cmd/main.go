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

	cancelAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_appointment"
	createManualAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_manual_appointment"
	deleteManualAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_manual_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getBookingLinkHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_booking_link"
	getBookingPageHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_booking_page"
	getStylistAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_stylist_appointments"
	getUserAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_user_appointments"
	listAvailableStylistsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_available_stylists"
	listServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_services"
	listStylistsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_stylists"
	paymentWebhookHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/payment_webhook"
	regenerateBookingLinkHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/regenerate_booking_link"
	updateScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	bookingLinkRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/bookinglink"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	stylistRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/stylist"
	identityClient "github.com/m04kA/SMC-SalonService/internal/integrations/identityservice"
	notificationClient "github.com/m04kA/SMC-SalonService/internal/integrations/notificationservice"
	paymentsClient "github.com/m04kA/SMC-SalonService/internal/integrations/payments"
	referralClient "github.com/m04kA/SMC-SalonService/internal/integrations/referralservice"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	bookingLinksService "github.com/m04kA/SMC-SalonService/internal/service/bookinglinks"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	createAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	createManualAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_manual_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	listAvailableStylistsUC "github.com/m04kA/SMC-SalonService/internal/usecase/list_available_stylists"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Рабочее окно салона провалидировано в config.Load
	salonOpen, _ := cfg.Salon.Opening()
	salonClose, _ := cfg.Salon.Closing()

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

	// Инициализируем интеграционных клиентов
	identity := identityClient.NewClient(
		cfg.Identity.URL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	notifier := notificationClient.NewClient(
		cfg.Notification.URL,
		time.Duration(cfg.Notification.Timeout)*time.Second,
		log,
	)
	referrals := referralClient.NewClient(
		cfg.Referral.URL,
		time.Duration(cfg.Referral.Timeout)*time.Second,
		log,
	)
	payments := paymentsClient.NewClient(paymentsClient.Config{
		MockMode:        cfg.Payments.MockMode,
		MockCheckoutURL: cfg.Payments.MockCheckoutURL,
		SecretKey:       cfg.Payments.SecretKey,
		WebhookSecret:   cfg.Payments.WebhookSecret,
		SuccessURL:      cfg.Payments.SuccessURL,
		CancelURL:       cfg.Payments.CancelURL,
		Currency:        cfg.Payments.Currency,
	}, log)
	log.Info("Integration clients initialized (IdentityService=%s, NotificationService=%s, ReferralService=%s, payments mock=%v)",
		cfg.Identity.URL, cfg.Notification.URL, cfg.Referral.URL, cfg.Payments.MockMode)

	// Инициализируем репозитории (с метриками или без)
	var (
		aptRepository     *appointmentRepo.Repository
		stylistRepository *stylistRepo.Repository
		serviceRepository *serviceRepo.Repository
		linkRepository    *bookingLinkRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		aptRepository = appointmentRepo.NewRepository(wrappedDB)
		stylistRepository = stylistRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		linkRepository = bookingLinkRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		aptRepository = appointmentRepo.NewRepository(db)
		stylistRepository = stylistRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		linkRepository = bookingLinkRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(
		serviceRepository,
		stylistRepository,
		identity,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		aptRepository,
		stylistRepository,
		identity,
		referrals,
		notifier,
		log,
	)
	bookingLinksSvc := bookingLinksService.NewService(
		linkRepository,
		stylistRepository,
		identity,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		aptRepository,
		stylistRepository,
		catalogSvc,
		getAvailableSlotsUC.SalonHours{
			Open:           salonOpen,
			Close:          salonClose,
			CadenceMinutes: cfg.Salon.SlotCadenceMinutes,
		},
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		aptRepository,
		stylistRepository,
		serviceRepository,
		catalogSvc,
		linkRepository,
		identity,
		payments,
		referrals,
		notifier,
		txMgr,
		createAppointmentUC.Settings{
			Open:              salonOpen,
			Close:             salonClose,
			AutoAssignEnabled: cfg.Salon.AutoAssignEnabled,
		},
		log,
	)

	createManualAppointmentUseCase := createManualAppointmentUC.NewUseCase(
		aptRepository,
		stylistRepository,
		serviceRepository,
		catalogSvc,
		identity,
		notifier,
		txMgr,
		createManualAppointmentUC.Settings{
			Open:  salonOpen,
			Close: salonClose,
		},
		log,
	)

	listAvailableStylistsUseCase := listAvailableStylistsUC.NewUseCase(
		aptRepository,
		stylistRepository,
		catalogSvc,
		listAvailableStylistsUC.SalonHours{
			Open:  salonOpen,
			Close: salonClose,
		},
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listStylists := listStylistsHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listAvailableStylists := listAvailableStylistsHandler.NewHandler(listAvailableStylistsUseCase, log)
	getBookingPage := getBookingPageHandler.NewHandler(bookingLinksSvc, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(payments, appointmentsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getStylistAppointments := getStylistAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBookingLink := getBookingLinkHandler.NewHandler(bookingLinksSvc, log)
	regenerateBookingLink := regenerateBookingLinkHandler.NewHandler(bookingLinksSvc, log)
	createManualAppointment := createManualAppointmentHandler.NewHandler(createManualAppointmentUseCase, log)
	deleteManualAppointment := deleteManualAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(catalogSvc, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг и стилистов
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stylists", listStylists.Handle).Methods(http.MethodGet)

	// Доступные слоты стилиста на дату
	api.HandleFunc("/stylists/{stylistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Свободные стилисты на момент времени
	api.HandleFunc("/available-stylists", listAvailableStylists.Handle).Methods(http.MethodGet)

	// Публичная страница записи по коду ссылки
	api.HandleFunc("/booking-code/{code}", getBookingPage.Handle).Methods(http.MethodGet)

	// Webhook платежного шлюза
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// Создание записи: доступно и гостям по коду ссылки, поэтому
	// X-User-ID здесь опционален и читается в самом handler
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Кабинет стилиста ---
	protected.HandleFunc("/stylists/{stylistId}/appointments", getStylistAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stylists/{stylistId}/booking-link", getBookingLink.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stylists/{stylistId}/booking-link/regenerate", regenerateBookingLink.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/stylists/{stylistId}/manual-appointments", createManualAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/stylists/{stylistId}/manual-appointments/{appointmentId}", deleteManualAppointment.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/stylists/{stylistId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

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
