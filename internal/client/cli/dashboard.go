package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/avelev/schoolguard/internal/client/models"
)

func printSnapshot(snap *models.Snapshot) {
	fmt.Printf("Visitors checked in: %d\n", snap.VisitorCount)

	fmt.Println("Security status:")
	for _, b := range snap.Statuses {
		fmt.Printf("  %-10s %d\n", b.Name, b.Value)
	}

	fmt.Println("Incidents by location:")
	for _, l := range snap.Locations {
		fmt.Printf("  %-12s %d\n", l.Location, l.Count)
	}
}

// Dashboard fetches and prints a fresh dashboard snapshot.
func (a *App) Dashboard(ctx context.Context) error {
	snap, err := a.dashboard.Fetch(ctx)
	if err != nil {
		log.Println(err.Error())
		if snap == nil {
			return err
		}
		fmt.Println("Showing the last good snapshot:")
	}

	printSnapshot(snap)
	return nil
}

// Watch polls the dashboard in the background and reprints each fresh
// snapshot. It returns when the user presses Enter; the polling loop is
// canceled at that point.
func (a *App) Watch(ctx context.Context) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		a.dashboard.Run(watchCtx)
	}()

	fmt.Printf("Watching the dashboard every %s, press Enter to stop\n", a.config.PollInterval)
	if _, err := a.reader.ReadString('\n'); err != nil {
		return err
	}
	cancel()

	if snap, lastErr := a.dashboard.Snapshot(); snap != nil {
		printSnapshot(snap)
		if lastErr != "" {
			log.Printf("last refresh failed: %s", lastErr)
		}
	}
	return nil
}

// Stats prints the backend's precomputed dashboard stats block.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.dashboard.Stats(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Total visitors:       %d\n", stats.TotalVisitors)
	fmt.Printf("Completed screenings: %d\n", stats.CompletedScreenings)
	fmt.Printf("Active incidents:     %d\n", stats.ActiveIncidents)
	fmt.Printf("Active sessions:      %d\n", stats.ActiveSessions)
	fmt.Printf("Pending approvals:    %d\n", stats.PendingApprovals)
	fmt.Printf("System alerts:        %d\n", stats.SystemAlerts)
	fmt.Printf("System health:        %s\n", stats.SystemHealth)
	return nil
}
