// Command purgedb wipes every parking entry. Meant for resetting a
// development database, never for production use.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kokoroskosv-git/Parking-slot-app/internal/config"
	"github.com/kokoroskosv-git/Parking-slot-app/internal/db"
	entryRepo "github.com/kokoroskosv-git/Parking-slot-app/internal/infra/storage/entry"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := db.Connect(cfg.Database)
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	repo := entryRepo.NewRepository(sqlDB)
	deleted, err := repo.DeleteAll(context.Background())
	if err != nil {
		fmt.Printf("Failed to purge entries: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Διαγράφηκαν %d εγγραφές.\n", deleted)
	fmt.Println("Η βάση έχει καθαριστεί πλήρως!")
}
