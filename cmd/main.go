package main

import (
	"context"
	"log"

	"rental-service/config"
	bookingHandler "rental-service/internal/module/booking/handler"
	bookingRepo "rental-service/internal/module/booking/repositories"
	bookingUsecase "rental-service/internal/module/booking/usecases"
	bookingIssueHandler "rental-service/internal/module/bookingissue/handler"
	bookingIssueRepo "rental-service/internal/module/bookingissue/repositories"
	bookingIssueUsecase "rental-service/internal/module/bookingissue/usecases"
	carHandler "rental-service/internal/module/car/handler"
	carRepo "rental-service/internal/module/car/repositories"
	carUsecase "rental-service/internal/module/car/usecases"
	locationHandler "rental-service/internal/module/location/handler"
	locationRepo "rental-service/internal/module/location/repositories"
	locationUsecase "rental-service/internal/module/location/usecases"
	maintenanceHandler "rental-service/internal/module/maintenance/handler"
	maintenanceRepo "rental-service/internal/module/maintenance/repositories"
	maintenanceUsecase "rental-service/internal/module/maintenance/usecases"
	notificationHandler "rental-service/internal/module/notification/handler"
	"rental-service/internal/module/notification/mailer"
	notificationRepo "rental-service/internal/module/notification/repositories"
	notificationUsecase "rental-service/internal/module/notification/usecases"
	"rental-service/internal/module/payment/gateway"
	paymentHandler "rental-service/internal/module/payment/handler"
	paymentRepo "rental-service/internal/module/payment/repositories"
	paymentUsecase "rental-service/internal/module/payment/usecases"
	refundHandler "rental-service/internal/module/refund/handler"
	refundRepo "rental-service/internal/module/refund/repositories"
	refundUsecase "rental-service/internal/module/refund/usecases"
	reviewHandler "rental-service/internal/module/review/handler"
	reviewRepo "rental-service/internal/module/review/repositories"
	reviewUsecase "rental-service/internal/module/review/usecases"
	userHandler "rental-service/internal/module/user/handler"
	userRepo "rental-service/internal/module/user/repositories"
	userUsecase "rental-service/internal/module/user/usecases"
	"rental-service/internal/pkg/database"
	"rental-service/internal/pkg/http"
	"rental-service/internal/pkg/httpclient"
	"rental-service/internal/pkg/jwt"
	"rental-service/internal/pkg/locker"
	log_internal "rental-service/internal/pkg/log"
	"rental-service/internal/pkg/lookup"
	"rental-service/internal/pkg/messagestream"
	"rental-service/internal/pkg/middleware"
	"rental-service/internal/pkg/redis"
	"rental-service/internal/pkg/scheduler"
	router "rental-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.InitConfig()

	// amounts go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {
	ctx := context.Background()

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	logHandler := log_internal.Setup()

	// init database
	db := database.GetConnection(&cfg.Database)
	if cfg.Database.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("error migrate database: %v", err)
		}
	}

	lookups, err := lookup.Load(ctx, db)
	if err != nil {
		log.Fatalf("error load lookups: %v", err)
	}

	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	lock := locker.New(redisClient, cfg.Booking.LockExpiry)

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	sched := scheduler.Scheduler{Log: logger}
	enqueuer := scheduler.NewEnqueuer(sched.InitClient(&cfg.Redis), logger)

	// init payment gateway
	var gw gateway.Gateway = gateway.NewStub()
	if cfg.PaymentGateway.URL != "" {
		cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
		gw = gateway.NewHTTP(cfg.PaymentGateway.URL, httpclient.InitHttpClient(&cfg.HttpClient, cb), logger)
	}

	tokens := jwt.NewManager(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.Expiry)
	mw := middleware.Middleware{
		Log: logHandler,
		JWT: tokens,
	}

	validate := validator.New()

	handlers := router.Handlers{
		Booking: &bookingHandler.BookingHandler{
			Log:       logHandler,
			Validator: validate,
			Usecase:   bookingUsecase.New(bookingRepo.New(db, logger), logger, publisher, lock, enqueuer, lookups, cfg.Booking),
		},
		Car: &carHandler.CarHandler{
			Log:       logHandler,
			Validator: validate,
			Usecase:   carUsecase.New(carRepo.New(db, logger), logger, lookups),
		},
		Payment: &paymentHandler.PaymentHandler{
			Log:       logHandler,
			Validator: validate,
			Usecase:   paymentUsecase.New(paymentRepo.New(db, logger), logger, publisher, lock, gw, lookups),
		},
		Refund: &refundHandler.RefundHandler{
			Log:       logHandler,
			Validator: validate,
			Usecase:   refundUsecase.New(refundRepo.New(db, logger), logger, publisher),
		},
		Review: &reviewHandler.ReviewHandler{
			Log:       logHandler,
			Validator: validate,
			Usecase:   reviewUsecase.New(reviewRepo.New(db, logger), logger),
		},
		Maintenance: &maintenanceHandler.MaintenanceHandler{
			Log:       logHandler,
			Validator: validate,
			Usecase:   maintenanceUsecase.New(maintenanceRepo.New(db, logger), logger),
		},
		BookingIssue: &bookingIssueHandler.BookingIssueHandler{
			Log:       logHandler,
			Validator: validate,
			Usecase:   bookingIssueUsecase.New(bookingIssueRepo.New(db, logger), logger),
		},
		User: &userHandler.UserHandler{
			Log:       logHandler,
			Validator: validate,
			Usecase:   userUsecase.New(userRepo.New(db, logger), logger, tokens, lookups),
		},
		Location: &locationHandler.LocationHandler{
			Log:       logHandler,
			Validator: validate,
			Usecase:   locationUsecase.New(locationRepo.New(db, logger), logger),
		},
	}

	// pending bookings expire through asynq
	go sched.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeExpirePendingBooking},
		[]func(ctx context.Context, t *asynq.Task) error{handlers.Booking.ExpirePending},
	)

	notifications := notificationHandler.NotificationHandler{
		Log:       logHandler,
		Validator: validate,
		Usecase:   notificationUsecase.New(notificationRepo.New(db, logger), logger, mailer.NewConsole(logger)),
		Publish:   publisher,
	}

	var messageRouters []*message.Router

	if subscriber != nil && publisher != nil {
		notificationRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisoned, "notification_handler", messagestream.TopicNotification, subscriber, notifications.ConsumeNotification)
		if err != nil {
			logger.Error(ctx, "Failed to create notification router", err)
		} else {
			messageRouters = append(messageRouters, notificationRouter)
		}
	} else {
		logger.Warn(ctx, "message broker unavailable, notifications are disabled")
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, handlers, &mw, sched.Monitoring(&cfg.Redis))

	return r, messageRouters
}
