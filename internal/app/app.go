package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/metrics"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/twmb/franz-go/pkg/sr"
)

type storages struct {
	sqldb    storage.SQLDB
	products storage.ProductsRepository
	users    storage.UsersRepository
}

// eventStream is nil when the broker is disabled.
type eventStream struct {
	serde     schema.Serde
	producer  port.OutcomeProducer
	processor port.OutcomeStatsProcessor
	view      port.OutcomeStatsView
}

type App struct {
	ctx         context.Context
	cfg         config.Config
	storages    *storages
	metrics     metrics.OutcomeRecorder
	eventStream *eventStream
	service     service.Service
	httpServer  httphandler.HTTPServer
}

func New(ctx context.Context, config config.Config) App {
	app := App{ctx: ctx, cfg: config, storages: new(storages)}

	app.initLogger()
	app.initStorages()
	app.initMetrics()
	app.initEventStream()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorages() {
	const op = "App.initStorages"

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}

	app.storages.sqldb = sqldb
	app.storages.products = storage.NewProductsRepository(sqldb)
	app.storages.users = storage.NewUsersRepository(sqldb)
}

func (app *App) initMetrics() {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.NewOutcomeRecorder(reg)
}

func (app *App) initEventStream() {
	if !app.cfg.Broker.Enabled {
		slog.Info("event stream is disabled")
		return
	}

	app.eventStream = new(eventStream)
	tlsConfig := app.brokerTLSConfig()

	app.initSerdes()
	app.initProducer(tlsConfig)
	app.initProcessor(tlsConfig)
	app.initView(tlsConfig)
}

func (app *App) brokerTLSConfig() *tls.Config {
	t := app.cfg.Broker.TLS
	if !t.Enabled() {
		return nil
	}
	return adapter.MakeTLSConfig(t.CA, t.Cert, t.Key)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	outcomesSS := app.cfg.Broker.Topics.QueryOutcomes + "-value"
	outcomeSerde, err := schema.NewSerdeQueryOutcomeV1(
		app.ctx,
		schema.SubjectOpt(outcomesSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.eventStream.serde = outcomeSerde
}

func (app *App) initProducer(tlsConfig *tls.Config) {
	const op = "App.initProducer"

	producer, err := kafka.NewOutcomeProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.Topics.QueryOutcomes,
			tlsConfig,
		),
		kafka.ProducerEncoderOpt(app.eventStream.serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.eventStream.producer = producer
}

func (app *App) initProcessor(tlsConfig *tls.Config) {
	const op = "App.initProcessor"

	processor, err := kafka.NewOutcomeStatsProcessor(
		kafka.OutcomeStatsProcessorConfig{
			SeedBrokers: app.cfg.Broker.SeedBrokers,
			Stream:      app.cfg.Broker.Topics.QueryOutcomes,
			Group:       app.cfg.Broker.Consumers.OutcomeStatsGroup,
			Serde:       app.eventStream.serde,
			TLSConfig:   tlsConfig,
		},
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.eventStream.processor = processor
}

func (app *App) initView(tlsConfig *tls.Config) {
	const op = "App.initView"

	view, err := kafka.NewOutcomeStatsView(kafka.OutcomeStatsViewConfig{
		SeedBrokers: app.cfg.Broker.SeedBrokers,
		Group:       app.cfg.Broker.Consumers.OutcomeStatsGroup,
		TLSConfig:   tlsConfig,
	})
	if err != nil {
		app.fallDown(op, err)
	}

	app.eventStream.view = view
}

func (app *App) initCoreService() {
	recorders := []port.OutcomeRecorder{app.metrics}
	if app.eventStream != nil {
		recorders = append(recorders, app.eventStream.producer)
	}

	app.service = service.New(
		app.storages.products,
		app.storages.users,
		service.ContactConfig{
			ServiceHost:       app.cfg.Contact.ServiceHost,
			Message:           app.cfg.Contact.Message,
			UnavailableNotice: app.cfg.Contact.UnavailableNotice,
		},
		recorders...,
	)
}

func (app *App) initInboundAdapters() {
	routerConfig := httphandler.RouterConfig{
		HomePage: app.service,
		Contact:  app.service,
		Metrics:  app.metrics.Handler(),
	}
	if app.eventStream != nil {
		routerConfig.Stats = app.eventStream.view
	}

	handler := httphandler.NewRouter(routerConfig)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app App) Run(stopFn context.CancelFunc) {
	if app.eventStream != nil {
		go app.eventStream.processor.Run(app.ctx)
		go app.eventStream.view.Run(app.ctx)
	}
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.eventStream != nil {
		app.eventStream.processor.Close()
		app.eventStream.producer.Close()
	}
	app.storages.sqldb.Close()

	slog.Info("application is closed")
}

func (app App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
