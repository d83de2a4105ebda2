package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/avelez/tireshop/internal/auth"
	"github.com/avelez/tireshop/internal/config"
	"github.com/avelez/tireshop/internal/database"
	"github.com/avelez/tireshop/internal/handler"
	"github.com/avelez/tireshop/internal/mail"
	"github.com/avelez/tireshop/internal/middleware"
	"github.com/avelez/tireshop/internal/queue"
	"github.com/avelez/tireshop/internal/repository"
	"github.com/avelez/tireshop/internal/router"
	"github.com/avelez/tireshop/internal/service"
	"github.com/avelez/tireshop/internal/session"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Sessions live in Redis when one is reachable, otherwise in memory
	// for the process lifetime.
	rdb := config.NewRedisClient()
	var sessions session.Store
	if rdb != nil {
		sessions = session.NewRedisStore(rdb)
		log.Printf("sessions: redis store")
	} else {
		sessions = session.NewMemoryStore()
		log.Printf("sessions: in-memory store")
	}

	creds := auth.StaticCredentials{
		Username:     cfg.AdminUser,
		Password:     cfg.AdminPass,
		PasswordHash: cfg.AdminPassHash,
	}

	tires := repository.NewTireRepo(db)
	orders := repository.NewOrderRepo(db)

	mailer, mailErr := mail.NewMailerFromEnv()
	if mailErr != nil {
		log.Printf("mail: disabled (%v)", mailErr)
	}

	// Confirmations go through the broker when one is configured, with
	// a background consumer doing the actual sending; otherwise inline
	// mail, otherwise just the log.
	var notifier service.Notifier
	switch {
	case os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "":
		notifier = service.QueueNotifier{}
		if mailer != nil {
			go func() {
				err := queue.StartOrderMailConsumer(func(ev queue.OrderPlacedEvent) error {
					subject, body := mail.BuildConfirmation(ev)
					return mailer.Send(ev.CustomerEmail, subject, body)
				})
				log.Printf("order-mailer: consumer stopped: %v", err)
			}()
		} else {
			log.Printf("order-mailer: broker configured but mail disabled; events will queue")
		}
	case mailer != nil:
		notifier = service.MailNotifier{M: mailer}
	default:
		notifier = service.LogNotifier{}
	}

	orderSvc := service.NewOrderService(db, tires, orders, notifier)

	authH := handler.NewAuthHandler(creds, sessions)
	invH := handler.NewInventoryHandler(tires)
	ordH := handler.NewOrderHandler(orderSvc, orders)

	loginLimiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	router.RegisterAPI(e, authH, invH, ordH, sessions, loginLimiter)
	router.RegisterStatic(e, cfg.StaticDir, sessions)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
