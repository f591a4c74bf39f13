package main

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/mobility-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("mobility")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	if conn := viper.GetString("orm.conn"); conn != "" {
		if err := migratePostgres(conn); err != nil {
			panic(err)
		}
	}

	if conn := viper.GetString("mongo.conn"); conn != "" {
		fmt.Println("index mobility collection")
		schema.NewMongoDBIndexer(conn, viper.GetString("mongo.database")).IndexAll()
	}
}

func migratePostgres(conn string) error {
	db, err := gorm.Open("postgres", conn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS mobility`).Error; err != nil {
		return err
	}

	if err := db.Exec("SET search_path TO mobility").Error; err != nil {
		return err
	}

	fmt.Println("migrate mobility table")
	return db.AutoMigrate(
		&schema.MobilityRow{},
	).Error
}
