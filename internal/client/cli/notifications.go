package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Notifications prints the notification list, unread entries first marked
// with an asterisk.
func (a *App) Notifications(ctx context.Context) error {
	list, err := a.notifications.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	unread := 0
	for _, n := range list {
		marker := " "
		if !n.Read {
			marker = "*"
			unread++
		}
		fmt.Printf("%s %s  %s  %s\n", marker, n.ID, n.Timestamp, n.Message)
	}
	fmt.Printf("%d unread\n", unread)
	return nil
}

// MarkRead marks a single notification as read.
func (a *App) MarkRead(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter notification id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.notifications.MarkRead(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Marked as read")
	return nil
}
