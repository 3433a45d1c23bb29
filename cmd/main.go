package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createSessionHandler "github.com/m04kA/HBP-GuestBookingService/internal/api/handlers/create_session"
	endSessionHandler "github.com/m04kA/HBP-GuestBookingService/internal/api/handlers/end_session"
	getDraftHandler "github.com/m04kA/HBP-GuestBookingService/internal/api/handlers/get_draft"
	listHotelsHandler "github.com/m04kA/HBP-GuestBookingService/internal/api/handlers/list_hotels"
	submitReservationHandler "github.com/m04kA/HBP-GuestBookingService/internal/api/handlers/submit_reservation"
	toggleRoomHandler "github.com/m04kA/HBP-GuestBookingService/internal/api/handlers/toggle_room"
	updateCriteriaHandler "github.com/m04kA/HBP-GuestBookingService/internal/api/handlers/update_criteria"
	updateDetailsHandler "github.com/m04kA/HBP-GuestBookingService/internal/api/handlers/update_details"
	"github.com/m04kA/HBP-GuestBookingService/internal/api/middleware"
	"github.com/m04kA/HBP-GuestBookingService/internal/config"
	sessionStorage "github.com/m04kA/HBP-GuestBookingService/internal/infra/storage/session"
	hotelAPIClient "github.com/m04kA/HBP-GuestBookingService/internal/integrations/hotelapi"
	hotelsService "github.com/m04kA/HBP-GuestBookingService/internal/service/hotels"
	sessionsService "github.com/m04kA/HBP-GuestBookingService/internal/service/sessions"
	submitReservationUC "github.com/m04kA/HBP-GuestBookingService/internal/usecase/submit_reservation"
	toggleRoomUC "github.com/m04kA/HBP-GuestBookingService/internal/usecase/toggle_room"
	updateCriteriaUC "github.com/m04kA/HBP-GuestBookingService/internal/usecase/update_criteria"
	"github.com/m04kA/HBP-GuestBookingService/pkg/logger"
	"github.com/m04kA/HBP-GuestBookingService/pkg/metrics"
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

	log.Info("Starting HBP-GuestBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент бэкенда отельной платформы.
	// Таймаут клиента - предел на availability и submit запросы.
	var hotelMetrics hotelAPIClient.MetricsRecorder
	if metricsCollector != nil {
		hotelMetrics = metricsCollector
	}
	hotelClient := hotelAPIClient.NewClient(
		cfg.HotelService.URL,
		time.Duration(cfg.HotelService.Timeout)*time.Second,
		log,
		hotelMetrics,
	)
	log.Info("Hotel API client initialized (url=%s, timeout=%ds)", cfg.HotelService.URL, cfg.HotelService.Timeout)

	// Хранилище сессий и сервисы
	store := sessionStorage.NewStore()
	sessionSvc := sessionsService.NewService(store, log)
	hotelSvc := hotelsService.NewService(hotelClient, log)

	// Фоновая очистка простаивающих сессий
	stopSweeperCh := make(chan struct{})
	var sessionMetrics sessionsService.SessionMetrics
	if metricsCollector != nil {
		sessionMetrics = metricsCollector
	}
	sessionSvc.StartSweeper(
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
		time.Duration(cfg.Sessions.SweepIntervalSeconds)*time.Second,
		stopSweeperCh,
		sessionMetrics,
	)
	log.Info("Session sweeper started (ttl=%dm, interval=%ds)",
		cfg.Sessions.TTLMinutes, cfg.Sessions.SweepIntervalSeconds)

	// Инициализируем use cases
	var staleCounter updateCriteriaUC.StaleCounter
	var submitMetrics submitReservationUC.SubmitMetrics
	if metricsCollector != nil {
		staleCounter = metricsCollector
		submitMetrics = metricsCollector
	}

	updateCriteriaUseCase := updateCriteriaUC.NewUseCase(sessionSvc, hotelClient, staleCounter, log)
	toggleRoomUseCase := toggleRoomUC.NewUseCase(sessionSvc, log)
	submitReservationUseCase := submitReservationUC.NewUseCase(sessionSvc, hotelClient, submitMetrics, log)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	getDraft := getDraftHandler.NewHandler(sessionSvc, log)
	endSession := endSessionHandler.NewHandler(sessionSvc, log)
	updateDetails := updateDetailsHandler.NewHandler(sessionSvc, log)
	listHotels := listHotelsHandler.NewHandler(hotelSvc, log)
	updateCriteria := updateCriteriaHandler.NewHandler(updateCriteriaUseCase, log)
	toggleRoom := toggleRoomHandler.NewHandler(toggleRoomUseCase, log)
	submitReservation := submitReservationHandler.NewHandler(submitReservationUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// Каталог отелей для пикера
	api.HandleFunc("/hotels", listHotels.Handle).Methods(http.MethodGet)

	// Создание гостевой сессии бронирования
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// ============================================================
	// SESSION ROUTES (требуют X-Session-ID header)
	// ============================================================

	session := api.PathPrefix("/session").Subrouter()
	session.Use(middleware.Session)

	// Текущее состояние черновика
	session.HandleFunc("/draft", getDraft.Handle).Methods(http.MethodGet)

	// Смена отеля/дат с перезапросом availability
	session.HandleFunc("/criteria", updateCriteria.Handle).Methods(http.MethodPut)

	// Переключение выбора комнаты
	session.HandleFunc("/rooms/{roomId}/toggle", toggleRoom.Handle).Methods(http.MethodPost)

	// Число гостей и пожелания
	session.HandleFunc("/details", updateDetails.Handle).Methods(http.MethodPut)

	// Отправка заявки на бронирование
	session.HandleFunc("/submit", submitReservation.Handle).Methods(http.MethodPost)

	// Завершение сессии
	session.HandleFunc("", endSession.Handle).Methods(http.MethodDelete)

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

	close(stopSweeperCh)
	log.Info("Session sweeper stopped")

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
