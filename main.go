package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/config"
	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/controllers"
	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/models"
)

func main() {
	log.Println("Starting Pizza Store console client...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dsn, err := resolveDSN(cfg, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: %s <dbname> <port> <user>\n", os.Args[0])
		os.Exit(1)
	}

	fmt.Print("Connecting to database...")
	if err := config.ConnectDatabaseDSN(dsn); err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	fmt.Println("Done")

	db := config.GetDB()
	if err := db.AutoMigrate(&models.User{}, &models.Store{}, &models.Item{},
		&models.FoodOrder{}, &models.OrderItem{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	session := controllers.NewSession(os.Stdin, os.Stdout, db)
	session.Run()

	fmt.Print("Disconnecting from database...")
	if err := config.CloseDatabase(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
	fmt.Println("Done")
	fmt.Println()
	fmt.Println("Bye !")
}

// resolveDSN picks the connection string for this run. Three positional
// arguments (dbname, port, user) select a local server; with no arguments
// the environment decides. Any other argument count is an error.
func resolveDSN(cfg *config.Config, args []string) (string, error) {
	switch len(args) {
	case 0:
		if cfg.DatabaseURL != "" {
			return cfg.DatabaseURL, nil
		}
		if cfg.DBName != "" && cfg.DBUser != "" {
			return config.LocalDSN(cfg.DBName, cfg.DBPort, cfg.DBUser), nil
		}
		return "", fmt.Errorf("no database configured")
	case 3:
		return config.LocalDSN(args[0], args[1], args[2]), nil
	default:
		return "", fmt.Errorf("expected dbname, port and user, got %d arguments", len(args))
	}
}
