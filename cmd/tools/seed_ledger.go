package main

import (
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"

	"booking-lab/domain"
	"booking-lab/infrastructure/storage"
)

// Fills the ledger with a plausible week of reservations so a freshly
// started server has something to show on the hallway displays.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	blugePath := flag.String("bluge", "./bluge", "Path to bluge label index")
	owner := flag.String("owner", "U0DEMO001", "Owner id stamped on the seeded rows")
	flag.Parse()

	log := logs.GetLoggerFromLevel(slog.LevelInfo)

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLogger(nil))
	if err != nil {
		log.Error("Failed to open badger", "error", err)
		return
	}
	defer db.Close()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(*blugePath))
	if err != nil {
		log.Error("Failed to open bluge writer", "error", err)
		return
	}
	defer blugeWriter.Close()

	repository := storage.NewReservationRepository(db, blugeWriter, log)

	type slot struct {
		dayOffset int
		hour      int
		duration  time.Duration
		label     string
	}
	week := []slot{
		{0, 10, time.Hour, "sprint planning"},
		{0, 14, 90 * time.Minute, "architecture review"},
		{1, 9, 30 * time.Minute, "standup overflow"},
		{1, 16, 2 * time.Hour, "movie night warmup"},
		{2, 11, time.Hour, "design critique"},
		{3, 13, time.Hour, "onboarding session"},
		{4, 15, 2 * time.Hour, "friday screening"},
	}

	base := time.Now().UTC().Add(24 * time.Hour).Truncate(24 * time.Hour)
	seeded := 0
	for _, s := range week {
		start := base.AddDate(0, 0, s.dayOffset).Add(time.Duration(s.hour) * time.Hour)
		res := domain.Reservation{
			ID:     uuid.New(),
			Start:  start,
			End:    start.Add(s.duration),
			Owner:  *owner,
			Label:  s.label,
			Status: domain.StatusActive,
		}
		if err := repository.Insert(res); err != nil {
			log.Error("Failed to seed reservation", "label", s.label, "error", err)
			continue
		}
		seeded++
		fmt.Printf("seeded %s  %s -> %s  %q\n",
			res.ID, res.Start.Format("Mon 15:04"), res.End.Format("Mon 15:04"), res.Label)
	}

	log.Info("Seeding done", "seeded", seeded, "requested", len(week))
}
