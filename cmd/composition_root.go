package cmd

import (
	"context"
	"errors"
	"fmt"

	httpadapter "messdelivery/internal/adapters/in/http"
	"messdelivery/internal/adapters/out/auth"
	"messdelivery/internal/adapters/out/blobstore"
	"messdelivery/internal/adapters/out/cache"
	"messdelivery/internal/adapters/out/messaging"
	"messdelivery/internal/adapters/out/postgres"
	"messdelivery/internal/adapters/out/postgres/credentialrepo"
	"messdelivery/internal/adapters/out/postgres/profilerepo"
	"messdelivery/internal/core/application/usecases/commands"
	"messdelivery/internal/core/application/usecases/queries"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/jobs"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

type eventPublisher interface {
	ports.EventPublisher
	Close(ctx context.Context) error
}

type CompositionRoot struct {
	cfg        Config
	logger     *zap.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	blobs      ports.BlobStore
	files      httpadapter.FileOpener
	identities ports.IdentityProvider
	verifier   ports.TokenVerifier
	issuer     httpadapter.TokenIssuer
	roleCache  *cache.RedisRoleCache
	publisher  eventPublisher
}

// NewCompositionRoot connects the adapters selected by cfg. Close releases
// what it opened.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *zap.Logger, gormDB *gorm.DB) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}

	var app *firebase.App
	if cfg.Auth.Provider == "firebase" || cfg.Storage.Driver == "gcs" {
		var err error
		app, err = firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.Auth.FirebaseCredentialsFile))
		if err != nil {
			return nil, fmt.Errorf("init firebase app: %w", err)
		}
	}

	if err := c.initAuth(ctx, app); err != nil {
		return nil, err
	}
	if err := c.initStorage(ctx, app); err != nil {
		return nil, err
	}

	roleCache, err := cache.NewRedisRoleCache(cache.Config{
		Enabled:  cfg.Cache.Enabled,
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		TTL:      cfg.Cache.TTL,
	})
	if err != nil {
		return nil, err
	}
	c.roleCache = roleCache

	if c.publisher, err = c.newPublisher(); err != nil {
		_ = roleCache.Close()
		return nil, err
	}
	return c, nil
}

func (c *CompositionRoot) initAuth(ctx context.Context, app *firebase.App) error {
	switch c.cfg.Auth.Provider {
	case "firebase":
		client, err := app.Auth(ctx)
		if err != nil {
			return fmt.Errorf("init firebase auth: %w", err)
		}
		fa := auth.NewFirebaseAuth(client)
		c.identities, c.verifier = fa, fa
	case "jwt":
		tokens, err := newJWTTokens(c.cfg.Auth)
		if err != nil {
			return err
		}
		local := auth.NewLocalIdentityProvider(credentialrepo.NewGormCredentialRepository(c.gormDB), tokens)
		c.identities, c.verifier, c.issuer = local, tokens, local
	default:
		return fmt.Errorf("unknown auth provider %q", c.cfg.Auth.Provider)
	}
	return nil
}

func (c *CompositionRoot) initStorage(ctx context.Context, app *firebase.App) error {
	switch c.cfg.Storage.Driver {
	case "gcs":
		client, err := app.Storage(ctx)
		if err != nil {
			return fmt.Errorf("init firebase storage: %w", err)
		}
		c.blobs = blobstore.NewGCSStore(client, c.cfg.Storage.BucketPrefix)
	case "local":
		store, err := blobstore.NewLocalStore(c.cfg.Storage.LocalDir, c.cfg.Storage.PublicURL, c.cfg.blobSigningSecret())
		if err != nil {
			return err
		}
		c.blobs, c.files = store, store
	default:
		return fmt.Errorf("unknown storage driver %q", c.cfg.Storage.Driver)
	}
	return nil
}

func (c *CompositionRoot) newPublisher() (eventPublisher, error) {
	switch c.cfg.Events.Driver {
	case "kafka":
		return messaging.NewKafkaPublisher(c.cfg.Events.KafkaBrokers, c.cfg.Events.KafkaTopic)
	case "servicebus":
		return messaging.NewServiceBusPublisher(c.cfg.Events.ServiceBusConnectionString, c.cfg.Events.ServiceBusQueue)
	case "log":
		return messaging.NewLogPublisher(c.logger), nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", c.cfg.Events.Driver)
	}
}

func (c *CompositionRoot) Close(ctx context.Context) error {
	return errors.Join(c.publisher.Close(ctx), c.roleCache.Close())
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) subscriptionUoWFactory() commands.SubscriptionUoWFactory {
	return FuncSubscriptionUoWFactory(func() commands.SubscriptionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() *commands.CreateDeliveryCommandHandler {
	h := commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAcceptFromPoolCommandHandler() *commands.AcceptFromPoolCommandHandler {
	h := commands.NewAcceptFromPoolCommandHandler(c.deliveryUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() *commands.AdvanceStatusCommandHandler {
	h := commands.NewAdvanceStatusCommandHandler(c.deliveryUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAttachProofCommandHandler() *commands.AttachProofCommandHandler {
	h := commands.NewAttachProofCommandHandler(c.deliveryUoWFactory(), c.blobs)
	return &h
}

func (c *CompositionRoot) CreateRequestSubscriptionCommandHandler() *commands.RequestSubscriptionCommandHandler {
	h := commands.NewRequestSubscriptionCommandHandler(c.subscriptionUoWFactory(), c.blobs)
	return &h
}

func (c *CompositionRoot) CreateReviewSubscriptionCommandHandler() *commands.ReviewSubscriptionCommandHandler {
	h := commands.NewReviewSubscriptionCommandHandler(c.subscriptionUoWFactory(), c.blobs)
	return &h
}

func (c *CompositionRoot) CreateCreateDeliveryStaffCommandHandler() *commands.CreateDeliveryStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateDeliveryStaffCommandHandler(f, c.identities)
	return &h
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() *commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewMarkNotificationReadCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() *commands.RelayOutboxCommandHandler {
	var f commands.RelayUoWFactory = FuncRelayUoWFactory(func() commands.RelayUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRelayOutboxCommandHandler(f, c.publisher)
	return &h
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	resolver := auth.NewCallerResolver(
		c.verifier,
		profilerepo.NewGormProfileRepository(c.gormDB),
		c.roleCache,
		c.logger,
	)

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateDelivery:       c.CreateCreateDeliveryCommandHandler(),
		AcceptFromPool:       c.CreateAcceptFromPoolCommandHandler(),
		AdvanceStatus:        c.CreateAdvanceStatusCommandHandler(),
		AttachProof:          c.CreateAttachProofCommandHandler(),
		RequestSubscription:  c.CreateRequestSubscriptionCommandHandler(),
		ReviewSubscription:   c.CreateReviewSubscriptionCommandHandler(),
		CreateDeliveryStaff:  c.CreateCreateDeliveryStaffCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),

		PublicPool:         queries.NewGetPublicPoolQueryHandler(c.gormDB),
		AssignedDeliveries: queries.NewGetAssignedDeliveriesQueryHandler(c.gormDB),
		MessDeliveries:     queries.NewGetMessDeliveriesQueryHandler(c.gormDB),
		StudentDeliveries:  queries.NewGetStudentDeliveriesQueryHandler(c.gormDB),
		MessStaff:          queries.NewGetMessStaffQueryHandler(c.gormDB),
		DeliveryProofs:     queries.NewGetDeliveryProofsQueryHandler(c.gormDB, c.blobs, c.cfg.Storage.SignedURLTTL),
		Notifications:      queries.NewGetNotificationsQueryHandler(c.gormDB),
	}, resolver, c.issuer)
}

func (c *CompositionRoot) RouterConfig() httpadapter.RouterConfig {
	return httpadapter.RouterConfig{Logger: c.logger, Files: c.files}
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	cmd, err := commands.NewRelayOutboxCommand(c.cfg.Outbox.BatchSize, c.cfg.Outbox.MaxAttempts)
	if err != nil {
		return nil, err
	}
	relay := jobs.NewOutboxRelayJob(c.CreateRelayOutboxCommandHandler(), cmd, c.cfg.Outbox.Schedule, c.logger)
	return jobs.NewJobManager(relay), nil
}

func newJWTTokens(cfg AuthConfig) (*auth.JWTTokens, error) {
	return auth.NewJWTTokens([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.TokenTTL)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncSubscriptionUoWFactory func() commands.SubscriptionUoW

func (f FuncSubscriptionUoWFactory) Create() commands.SubscriptionUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncRelayUoWFactory func() commands.RelayUoW

func (f FuncRelayUoWFactory) Create() commands.RelayUoW {
	return f()
}
