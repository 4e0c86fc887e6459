package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "orderhub/internal/adapters/in/http"
	"orderhub/internal/adapters/in/ws"
	"orderhub/internal/adapters/out/archive"
	"orderhub/internal/adapters/out/memory"
	"orderhub/internal/adapters/out/postgres"
	"orderhub/internal/adapters/out/postgres/orderrepo"
	"orderhub/internal/adapters/out/postgres/userrepo"
	"orderhub/internal/adapters/out/rabbitmq"
	"orderhub/internal/auth"
	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/ports"
	"orderhub/internal/jobs"
	"orderhub/internal/pkg/keylock"
	"orderhub/internal/realtime"

	"github.com/labstack/echo/v4"
	"github.com/sourcegraph/conc"
	"gorm.io/gorm"
)

// CompositionRoot owns every long-lived dependency of the process.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	gormDB *gorm.DB
	broker *rabbitmq.Client
	relay  *rabbitmq.Relay

	orders    *memory.OrderStore
	chatLog   *memory.ChatLog
	users     ports.UserRepository
	archive   ports.OrderArchive
	writer    *archive.Writer
	locker    *keylock.KeyedMutex
	hub       *realtime.Hub
	publisher ports.EventPublisher
	tokens    *auth.TokenIssuer
	authn     *auth.Authenticator
}

// NewCompositionRoot connects to the optional database and broker, restores the
// archived orders and wires the in-memory authorities. Archive failures at start are
// logged and leave the order table empty.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:     cfg,
		logger:  logger,
		chatLog: memory.NewChatLog(cfg.ChatMaxPerOrder),
		locker:  keylock.New(),
		hub:     realtime.NewHub(logger),
		archive: archive.Noop{},
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	c.tokens = tokens

	if err = c.openDatabase(ctx); err != nil {
		return nil, err
	}

	c.orders = memory.NewOrderStore(memory.WithChangeHook(func() {
		c.writer.MarkDirty()
	}))
	c.writer = archive.NewWriter(c.orders, c.archive, logger)
	restored := c.orders.Seed(archive.Restore(ctx, c.archive, logger))
	logger.InfoContext(ctx, "order table restored", "orders", restored)

	c.authn = auth.NewAuthenticator(c.tokens, c.users)

	c.publisher = c.hub
	if cfg.BrokerEnabled() {
		if c.broker, err = rabbitmq.Dial(cfg.AMQPURL, cfg.AMQPExchange); err != nil {
			c.Close()
			return nil, err
		}
		c.relay = rabbitmq.NewRelay(c.hub, c.broker, cfg.AMQPExchange, logger)
		c.publisher = c.relay
	}

	return c, nil
}

func (c *CompositionRoot) openDatabase(ctx context.Context) error {
	if !c.cfg.DatabaseEnabled() {
		c.users = memory.NewUserRepository()
		c.logger.InfoContext(ctx, "no database configured, state is kept in memory only")
		return nil
	}

	db, err := postgres.Open(ctx, c.cfg.Database().DSN())
	if err != nil {
		return err
	}

	orderArchive := orderrepo.NewGormOrderArchive(db, c.logger)
	users := userrepo.NewGormUserRepository(db)
	if err = orderArchive.Migrate(ctx); err != nil {
		_ = postgres.Close(db)
		return err
	}
	if err = users.Migrate(ctx); err != nil {
		_ = postgres.Close(db)
		return err
	}

	c.gormDB = db
	c.archive = orderArchive
	c.users = users
	return nil
}

// Run starts the background writer and the broker relay. Both stop with ctx; the
// returned func waits for them, including the writer's final save.
func (c *CompositionRoot) Run(ctx context.Context) (wait func()) {
	var wg conc.WaitGroup
	wg.Go(func() { c.writer.Run(ctx) })
	if c.relay != nil {
		wg.Go(func() { c.relay.Run(ctx) })
	}
	return wg.Wait
}

// ResetData truncates the persisted users and orders.
func (c *CompositionRoot) ResetData(ctx context.Context) error {
	if c.gormDB == nil {
		return fmt.Errorf("reset data: no database configured")
	}
	if err := orderrepo.NewGormOrderArchive(c.gormDB, c.logger).Reset(ctx); err != nil {
		return err
	}
	return userrepo.NewGormUserRepository(c.gormDB).Reset(ctx)
}

// Close releases the broker and database connections.
func (c *CompositionRoot) Close() {
	if c.broker != nil {
		c.broker.Close()
	}
	if c.gormDB != nil {
		if err := postgres.Close(c.gormDB); err != nil {
			c.logger.Warn("close database", "error", err)
		}
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.users, c.tokens)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.users, c.tokens)
}

func (c *CompositionRoot) CreateSetAvailabilityCommandHandler() commands.SetAvailabilityCommandHandler {
	return commands.NewSetAvailabilityCommandHandler(c.users)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.publisher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orders, c.users, c.locker, c.publisher)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.orders, c.users, c.locker, c.publisher)
}

func (c *CompositionRoot) CreateSendChatMessageCommandHandler() commands.SendChatMessageCommandHandler {
	return commands.NewSendChatMessageCommandHandler(c.orders, c.chatLog, c.locker, c.publisher)
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	return commands.NewUpdateLocationCommandHandler(c.orders, c.publisher)
}

func (c *CompositionRoot) CreatePruneChatCommandHandler() commands.PruneChatCommandHandler {
	return commands.NewPruneChatCommandHandler(c.chatLog)
}

func (c *CompositionRoot) CreateGetMeQueryHandler() queries.GetMeQueryHandler {
	return queries.NewGetMeQueryHandler(c.users)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetChatHistoryQueryHandler() queries.GetChatHistoryQueryHandler {
	return queries.NewGetChatHistoryQueryHandler(c.orders, c.chatLog)
}

// CreateLiveHandler builds the websocket endpoint.
func (c *CompositionRoot) CreateLiveHandler() *ws.Handler {
	return ws.NewHandler(c.authn, c.hub, ws.UseCases{
		GetOrder:       c.CreateGetOrderQueryHandler(),
		ChatHistory:    c.CreateGetChatHistoryQueryHandler(),
		SendChat:       c.CreateSendChatMessageCommandHandler(),
		UpdateLocation: c.CreateUpdateLocationCommandHandler(),
		ChangeStatus:   c.CreateChangeOrderStatusCommandHandler(),
	}, c.logger, ws.WithAllowedOrigins(c.cfg.CORSOrigins))
}

// CreateRouter builds the echo instance serving REST, swagger and the live channel.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.UseCases{
		Register:        c.CreateRegisterUserCommandHandler(),
		Login:           c.CreateLoginCommandHandler(),
		SetAvailability: c.CreateSetAvailabilityCommandHandler(),
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		ChangeStatus:    c.CreateChangeOrderStatusCommandHandler(),
		AssignDelivery:  c.CreateAssignDeliveryCommandHandler(),
		GetMe:           c.CreateGetMeQueryHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
	})

	return httpadapter.NewRouter(server, c.authn, c.logger,
		httpadapter.WithAllowedOrigins(c.cfg.CORSOrigins...),
		httpadapter.WithLiveChannel(c.CreateLiveHandler()),
	)
}

// CreateJobManager schedules chat retention and, with a database, archive flushes.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var flusher jobs.Flusher
	if c.gormDB != nil {
		flusher = c.writer
	}
	return jobs.NewJobManager(c.CreatePruneChatCommandHandler(), c.cfg.ChatRetention, flusher, c.logger)
}
