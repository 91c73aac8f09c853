package cli

import (
	"context"
	"fmt"
	"log"
)

// Incidents prints the incident list.
func (a *App) Incidents(ctx context.Context) error {
	list, err := a.dashboard.Incidents(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, inc := range list {
		fmt.Printf("%d  %-12s %-12s %-12s %s\n", inc.ID.Int64(), inc.Type, inc.Location, inc.Status, inc.Timestamp)
	}
	return nil
}
