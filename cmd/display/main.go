// The display command is a terminal client for the raw TCP feed. It
// renders each pushed snapshot as a hallway-style schedule: the
// booking in progress, the next two, and the full upcoming table.
// Useful as a kiosk fallback and for eyeballing the push path.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"

	"booking-lab/domain"
)

type Config struct {
	FeedAddr string `envconfig:"FEED_ADDR" default:"localhost:7070"`
	// DISPLAY_COLOURS enables colorized output for better readability
	Colours        bool          `envconfig:"DISPLAY_COLOURS" default:"true"`
	ReconnectDelay time.Duration `envconfig:"RECONNECT_DELAY" default:"3s"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	for {
		if err := watch(cfg); err != nil {
			log.Printf("Feed connection lost: %v, retrying in %v", err, cfg.ReconnectDelay)
		}
		time.Sleep(cfg.ReconnectDelay)
	}
}

func watch(cfg Config) error {
	conn, err := net.Dial("tcp", cfg.FeedAddr)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("Connected to feed at %s", cfg.FeedAddr)

	scanner := bufio.NewScanner(conn)
	// Snapshots of a busy week can outgrow the default token size
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		var snapshot domain.Snapshot
		if err := json.Unmarshal(scanner.Bytes(), &snapshot); err != nil {
			log.Printf("Skipping malformed snapshot: %v", err)
			continue
		}
		render(cfg, snapshot)
	}
	return scanner.Err()
}

func render(cfg Config, snapshot domain.Snapshot) {
	// ANSI clear screen, the feed repaints the whole view every time
	fmt.Print("\033[2J\033[H")

	header := fmt.Sprintf("  ====== ROOM SCHEDULE @ %s ======", snapshot.GeneratedAt.Format("Mon Jan 02 15:04"))
	if cfg.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)
	fmt.Println()

	if snapshot.Current != nil {
		line := fmt.Sprintf("  NOW: %s (until %s)", snapshot.Current.Label, snapshot.Current.End.Format("15:04"))
		if cfg.Colours {
			line = color.New(color.FgYellow, color.Bold).Render(line)
		}
		fmt.Println(line)
	} else {
		fmt.Println("  NOW: room is free")
	}

	for i, entry := range snapshot.Next {
		fmt.Printf("  +%d:  %s (%s - %s)\n", i+1, entry.Label,
			entry.Start.Format("15:04"), entry.End.Format("15:04"))
	}
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Start", "End", "Label"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, entry := range snapshot.Upcoming {
		table.Append([]string{
			entry.Start.Format("Mon 15:04"),
			entry.End.Format("15:04"),
			entry.Label,
		})
	}
	table.Render()
}
