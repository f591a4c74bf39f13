package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/mobility-api/api"
	"github.com/bitmark-inc/mobility-api/store"
	"github.com/bitmark-inc/mobility-api/utils"
)

var (
	server        *api.Server
	source        store.MobilityStore
	metricsCloser io.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("mobility")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("dataset.source", "csv")
	viper.SetDefault("dataset.file", "mobility.csv")
	viper.SetDefault("i18n.dir", "i18n")
}

func loadOptions() *store.LoadOptions {
	opts := store.DefaultLoadOptions()
	if countries := viper.GetStringSlice("dataset.countries"); len(countries) > 0 {
		opts.Countries = countries
	}
	return opts
}

// openSource connects the database named by dataset.source, nil for a csv file
func openSource(ctx context.Context) (store.MobilityStore, error) {
	switch viper.GetString("dataset.source") {
	case "mongo":
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			return nil, fmt.Errorf("create mongo client with error: %w", err)
		}

		if err := mongoClient.Connect(ctx); nil != err {
			return nil, fmt.Errorf("connect mongo database with error: %w", err)
		}
		return store.NewMongoStore(mongoClient, viper.GetString("mongo.database")), nil
	case "postgres":
		ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
		if err != nil {
			return nil, err
		}
		return store.NewPostgresStore(ormDB), nil
	case "csv", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown dataset source %q", viper.GetString("dataset.source"))
	}
}

func loadDataset(ctx context.Context) (store.DatasetStore, error) {
	if source != nil {
		return store.LoadDataset(ctx, source, loadOptions())
	}
	return store.LoadCSV(viper.GetString("dataset.file"), loadOptions())
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown mobility api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if source != nil {
			log.Info("Shutting down db store")
			source.Close()
		}

		if metricsCloser != nil {
			if err := metricsCloser.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded i18n message files")

	location, err := utils.ResolveLocation(viper.GetString("time.location"))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Infof("Slider dates at midnight of %s", location)

	source, err = openSource(initialCtx)
	if err != nil {
		log.Panic(err)
	}

	dataset, err := loadDataset(initialCtx)
	if err != nil {
		sentry.CaptureException(err)
		log.Panic(err)
	}
	log.WithField("prefix", "init").Infof("Loaded dataset of %d countries", len(dataset.Countries()))

	var boundaries *store.Boundaries
	if file := viper.GetString("boundary.file"); file != "" {
		boundaries, err = store.LoadBoundaryFile(file)
		if err != nil {
			log.Panic(err)
		}
	}

	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   "mobility",
		Tags:     map[string]string{"version": viper.GetString("server.version")},
		Reporter: tally.NullStatsReporter,
	}, time.Second)
	metricsCloser = closer

	// Init http server
	server = api.NewServer(dataset, source, boundaries, location, scope)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
