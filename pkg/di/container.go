package di

import (
	"context"
	"fmt"
	"time"

	"deskhub/application/serviceimpl"
	"deskhub/domain/ports"
	"deskhub/domain/repositories"
	"deskhub/domain/services"
	googlepkg "deskhub/infrastructure/google"
	"deskhub/infrastructure/messaging"
	"deskhub/infrastructure/msgraph"
	"deskhub/infrastructure/postgres"
	redispkg "deskhub/infrastructure/redis"
	sessionpkg "deskhub/infrastructure/session"
	"deskhub/infrastructure/telegram"
	"deskhub/infrastructure/tokenstore"
	"deskhub/interfaces/api/handlers"
	"deskhub/pkg/config"
	"deskhub/pkg/logger"
	"deskhub/pkg/scheduler"

	"gorm.io/gorm"
)

// reminderInterval is how often the reminder pass runs; reminderWindow is how
// far ahead each pass looks.
const (
	reminderInterval = time.Minute
	reminderWindow   = 5 * time.Minute
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB           *gorm.DB
	RedisClient  *redispkg.Client // optional, sessions fall back to memory
	Sessions     ports.SessionStore
	Tokens       ports.TokenStore
	NatsNotifier *messaging.NatsNotifier // optional
	Scheduler    scheduler.Scheduler

	// Repositories
	UserRepository           repositories.UserRepository
	ContactRepository        repositories.ContactRepository
	NoteRepository           repositories.NoteRepository
	TagRepository            repositories.TagRepository
	TaskRepository           repositories.TaskRepository
	EventRepository          repositories.EventRepository
	BookmarkRepository       repositories.BookmarkRepository
	GmailAccountRepository   repositories.GmailAccountRepository
	OutlookAccountRepository repositories.OutlookAccountRepository

	// Services
	AuthService      services.AuthService
	ContactService   services.ContactService
	NoteService      services.NoteService
	TaskService      services.TaskService
	EventService     services.EventService
	BookmarkService  services.BookmarkService
	MailService      services.MailService
	DashboardService services.DashboardService
	ReminderService  services.ReminderService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	logger.Info("Container initialized")
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(c.Config)
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	c.DB = db
	logger.Info("Database connected", "driver", c.Config.Database.Driver)

	// Redis is optional: without it, sessions live in process memory.
	if c.Config.Redis.URL != "" {
		client, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			return fmt.Errorf("failed to init redis: %w", err)
		}
		c.RedisClient = client
		c.Sessions = sessionpkg.NewRedisStore(client)
	} else {
		c.Sessions = sessionpkg.NewMemoryStore()
		logger.Warn("Redis not configured, sessions are in-memory only")
	}

	if err := c.initTokenStore(); err != nil {
		return err
	}

	if c.Config.NATS.URL != "" {
		notifier, err := messaging.NewNatsNotifier(&c.Config.NATS)
		if err != nil {
			return fmt.Errorf("failed to init NATS: %w", err)
		}
		c.NatsNotifier = notifier
	}

	return nil
}

func (c *Container) initTokenStore() error {
	switch c.Config.Tokens.Type {
	case "s3":
		store, err := tokenstore.NewS3Store(&c.Config.Tokens.S3)
		if err != nil {
			return fmt.Errorf("failed to init s3 token store: %w", err)
		}
		c.Tokens = store
		logger.Info("Token store initialized", "type", "s3", "bucket", c.Config.Tokens.S3.Bucket)
	default:
		store, err := tokenstore.NewLocalStore(c.Config.Tokens.BasePath)
		if err != nil {
			return fmt.Errorf("failed to init local token store: %w", err)
		}
		c.Tokens = store
		logger.Info("Token store initialized", "type", "local", "path", c.Config.Tokens.BasePath)
	}
	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.ContactRepository = postgres.NewContactRepository(c.DB)
	c.NoteRepository = postgres.NewNoteRepository(c.DB)
	c.TagRepository = postgres.NewTagRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.EventRepository = postgres.NewEventRepository(c.DB)
	c.BookmarkRepository = postgres.NewBookmarkRepository(c.DB)
	c.GmailAccountRepository = postgres.NewGmailAccountRepository(c.DB)
	c.OutlookAccountRepository = postgres.NewOutlookAccountRepository(c.DB)
	return nil
}

func (c *Container) initServices() error {
	sessionTTL := time.Duration(c.Config.Session.TTLHours) * time.Hour

	c.AuthService = serviceimpl.NewAuthService(
		c.UserRepository,
		c.Sessions,
		c.Config.Session.Secret,
		sessionTTL,
	)
	c.ContactService = serviceimpl.NewContactService(c.ContactRepository)
	c.NoteService = serviceimpl.NewNoteService(c.NoteRepository)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.TagRepository)
	c.EventService = serviceimpl.NewEventService(c.EventRepository)
	c.BookmarkService = serviceimpl.NewBookmarkService(c.BookmarkRepository)
	c.DashboardService = serviceimpl.NewDashboardService(
		c.TaskRepository,
		c.NoteRepository,
		c.EventRepository,
	)

	gmailProvider := googlepkg.NewGmailProvider(&c.Config.Mail, c.Tokens)
	outlookProvider := msgraph.NewOutlookProvider(&c.Config.Mail, c.Tokens)
	c.MailService = serviceimpl.NewMailService(
		c.GmailAccountRepository,
		c.OutlookAccountRepository,
		c.Tokens,
		gmailProvider,
		outlookProvider,
		c.Config.Mail.LookbackDays,
	)

	var notifiers []ports.Notifier
	if c.Config.Telegram.BotToken != "" && c.Config.Telegram.ChatID != "" {
		notifiers = append(notifiers, telegram.NewNotifier(&c.Config.Telegram))
		logger.Info("Telegram notifier enabled")
	}
	if c.NatsNotifier != nil {
		notifiers = append(notifiers, c.NatsNotifier)
		logger.Info("NATS notifier enabled", "subject", c.Config.NATS.Subject)
	}
	c.ReminderService = serviceimpl.NewReminderService(
		c.TaskRepository,
		c.EventRepository,
		notifiers,
		reminderWindow,
	)

	return nil
}

func (c *Container) initScheduler() error {
	if !c.Config.Scheduler.Enabled {
		logger.Info("Scheduler disabled")
		return nil
	}

	loc, err := time.LoadLocation(c.Config.Scheduler.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Config.Scheduler.Timezone, err)
	}

	c.Scheduler = scheduler.New(loc)
	if err := c.Scheduler.AddInterval("reminder-check", reminderInterval, func() {
		ctx, cancel := contextWithTimeout(reminderInterval)
		defer cancel()
		if err := c.ReminderService.CheckReminders(ctx); err != nil {
			logger.Error("Reminder pass failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to register reminder job: %w", err)
	}
	c.Scheduler.Start()

	logger.Info("Scheduler started", "timezone", c.Config.Scheduler.Timezone)
	return nil
}

func contextWithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// GetHandlerServices bundles services for the HTTP layer.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:      c.AuthService,
		SessionTTL:       time.Duration(c.Config.Session.TTLHours) * time.Hour,
		ContactService:   c.ContactService,
		NoteService:      c.NoteService,
		TaskService:      c.TaskService,
		EventService:     c.EventService,
		BookmarkService:  c.BookmarkService,
		MailService:      c.MailService,
		DashboardService: c.DashboardService,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.Scheduler != nil && c.Scheduler.IsRunning() {
		c.Scheduler.Stop()
		logger.Info("Scheduler stopped")
	}

	if c.NatsNotifier != nil {
		c.NatsNotifier.Close()
		logger.Info("NATS connection closed")
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Error("Failed to close Redis", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Error("Failed to close database", "error", err)
			}
		}
	}

	return nil
}
