package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/QuangTung97/conference/config"
	"github.com/QuangTung97/conference/pkg/cacheclient"
	"github.com/QuangTung97/conference/pkg/grpclib"
	"github.com/QuangTung97/conference/pkg/memtable"
	"github.com/QuangTung97/conference/pkg/migration"
	"github.com/QuangTung97/conference/pkg/otellib"
	"github.com/QuangTung97/conference/repository"
	"github.com/QuangTung97/conference/service/announcement"
	"github.com/QuangTung97/conference/service/conference"
	"github.com/QuangTung97/conference/service/httpapi"
	"github.com/QuangTung97/conference/service/ledger"
	"github.com/QuangTung97/conference/service/query"
	"github.com/QuangTung97/conference/service/session"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/go-sql-driver/mysql"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type app struct {
	workflow     ledger.IWorkflow
	conference   *conference.Service
	announcement *announcement.Service
	session      *session.Service
}

func connectStore(conf config.Config) *sqlx.DB {
	db := conf.Store.MustConnect()
	if conf.Store.Driver == config.DriverSQLite {
		if err := migration.ApplySQLiteSchema(db); err != nil {
			panic(err)
		}
	}
	return db
}

func newAnnouncementCache(conf config.Config) announcement.Cache {
	if conf.Memcache.Enabled() {
		numConns := 1
		if conf.Memcache.NumConns > 0 {
			numConns = conf.Memcache.NumConns
		}
		return cacheclient.New(conf.Memcache.Addr(), numConns)
	}
	return memtable.New(conf.Announcement.NearCacheSize)
}

func newApp(conf config.Config) *app {
	db := connectStore(conf)

	provider := repository.NewProvider(db)
	confRepo := repository.NewConference()
	profileRepo := repository.NewProfile()

	metrics := ledger.NewMetrics(prometheus.DefaultRegisterer)
	manager := ledger.NewManager(provider, conf.Ledger.MaxRetries, metrics)
	querySvc := query.NewService(provider, confRepo)

	workflow := ledger.NewIWorkflowWrapper(
		ledger.NewWorkflow(manager, confRepo, profileRepo, metrics),
		otel.GetTracerProvider().Tracer("ledger"), "ledger::",
	)

	cache := newAnnouncementCache(conf)

	return &app{
		workflow:     workflow,
		conference:   conference.NewService(provider, manager, querySvc, confRepo, profileRepo),
		announcement: announcement.NewService(querySvc, cache, conf.Announcement.TTLSeconds),
		session: session.NewService(
			provider, manager, confRepo, repository.NewSession(), announcement.NewFeatured(cache),
		),
	}
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel("conference", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.UnaryServerInterceptor(tracerProvider),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	a := newApp(conf)

	router := httpapi.NewRouter(
		httpapi.NewHandler(a.conference, a.workflow, a.announcement, a.session),
		logger, tracerProvider.Tracer("http"),
	)
	router.Handle("/metrics", promhttp.Handler())

	startHTTPAndGRPCServers(conf, router, grpcServer)
}

func refreshAnnouncement() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	a := newApp(conf)

	ctx := otellib.ToContext(context.Background(), logger)
	announcementText, err := a.announcement.Refresh(ctx)
	if err != nil {
		logger.Error("refresh announcement", zap.Error(err))
		return
	}
	fmt.Println("ANNOUNCEMENT:", announcementText)
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
		refreshAnnouncementCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func refreshAnnouncementCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-announcement",
		Short: "recompute the nearly sold out announcement, run periodically by a scheduler",
		Run: func(cmd *cobra.Command, args []string) {
			refreshAnnouncement()
		},
	}
}

func startHTTPAndGRPCServers(conf config.Config, handler http.Handler, grpcServer *grpc.Server) {
	fmt.Println("GRPC:", conf.Server.GRPC.ListenString())
	fmt.Println("HTTP:", conf.Server.HTTP.ListenString())

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: handler,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		fmt.Println("Shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
