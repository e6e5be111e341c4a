package bootstrap

import (
	"context"
	"log"

	"banner-chat-be/internal/config"
	"banner-chat-be/internal/controller"
	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/internal/repository/unitofwork"
	"banner-chat-be/internal/service"
	"banner-chat-be/pkg/httpclient"
	"banner-chat-be/pkg/imagecache"
	"banner-chat-be/pkg/imagefetch"
	"banner-chat-be/pkg/provider"

	pkgNats "banner-chat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	ChatAdminController    controller.IChatAdminController
	MessageAdminController controller.IMessageAdminController
	JobController          controller.IJobController

	// Background services (exposed for the binaries to run)
	CacheRefillService service.ICacheRefillService
	IngestionService   service.IIngestionService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus (in-process refill queue)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.Nats.URL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.Redis.URL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	httpClient := httpclient.New(sysLogger)
	fetcher := imagefetch.NewFetcher(httpClient, cfg.App.MediaRoot, sysLogger)

	// 4. Domain wiring
	imageSource := service.NewCacheImageSource(uowFactory)
	cache := imagecache.New(rdb, imageSource, sysLogger)
	refillService := service.NewCacheRefillService(pubSub, cache, sysLogger)

	imageStore := service.NewProviderImageStore(uowFactory)
	slingAcademy := provider.NewSlingAcademy(imageStore, httpClient, cfg.Providers.SlingAcademyURL, fetcher, sysLogger)
	providerFactory := provider.NewFactory(slingAcademy)
	ingestionService := service.NewIngestionService(providerFactory, sysLogger)

	// 5. Services
	authService := service.NewAuthService(uowFactory, cfg.App.JWTSecret)
	userService := service.NewUserService(uowFactory)
	bannerService := service.NewBannerService(
		uowFactory,
		cache,
		refillService,
		cfg.Banner.CacheKey,
		cfg.Banner.BatchSize,
		sysLogger,
	)
	chatAdminService := service.NewChatAdminService(uowFactory, sysLogger)
	messageAdminService := service.NewMessageAdminService(uowFactory, sysLogger)
	jobService := service.NewJobService(natsPub, sysLogger)

	// 6. Controllers
	guard := controller.NewPermissionGuard(userService)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		ChatAdminController:    controller.NewChatAdminController(chatAdminService, bannerService, guard),
		MessageAdminController: controller.NewMessageAdminController(messageAdminService, guard),
		JobController:          controller.NewJobController(jobService, guard),

		CacheRefillService: refillService,
		IngestionService:   ingestionService,

		Logger: sysLogger,
	}
}
