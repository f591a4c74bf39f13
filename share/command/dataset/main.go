package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/mobility-api/store"
)

var (
	cfgFile string
	csvFile string
)

var rootCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Import and inspect the mobility dataset",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadConfig()
		initLog()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&csvFile, "file", "f", "", "dataset csv file (overrides dataset.file)")
	rootCmd.PersistentFlags().String("countries", "", "comma separated ISO codes to keep (overrides dataset.countries)")

	_ = viper.BindPFlag("dataset.file", rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("dataset.countries", rootCmd.PersistentFlags().Lookup("countries"))
}

func loadConfig() {
	viper.SetConfigType("yaml")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file. Read config from env.")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("mobility")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadOptions() *store.LoadOptions {
	opts := store.DefaultLoadOptions()

	var countries []string
	for _, c := range viper.GetStringSlice("dataset.countries") {
		for _, code := range strings.Split(c, ",") {
			if code = strings.TrimSpace(code); code != "" {
				countries = append(countries, code)
			}
		}
	}
	if len(countries) > 0 {
		opts.Countries = countries
	}
	return opts
}

// openTarget connects the database the import writes to
func openTarget(ctx context.Context, target string) (store.MobilityStore, error) {
	switch target {
	case "mongo":
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(1)
		client, err := mongo.NewClient(opts)
		if err != nil {
			return nil, err
		}
		if err := client.Connect(ctx); err != nil {
			return nil, err
		}
		return store.NewMongoStore(client, viper.GetString("mongo.database")), nil
	case "postgres":
		ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
		if err != nil {
			return nil, err
		}
		return store.NewPostgresStore(ormDB), nil
	default:
		return nil, fmt.Errorf("unknown import target %q", target)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
