package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/avelev/schoolguard/internal/client/services"
)

func (a *App) promptVolunteerID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid volunteer id %q", raw)
	}
	return id, nil
}

// Volunteers prints the volunteer roster.
func (a *App) Volunteers(ctx context.Context) error {
	list, err := a.volunteers.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, v := range list {
		checkedIn := ""
		if v.IsCheckedIn {
			checkedIn = " [checked in: " + v.CurrentAssignment + "]"
		}
		fmt.Printf("%d  %s  %s  %s/%s%s\n", v.ID.Int64(), v.Name, v.Role, v.Status, v.BackgroundCheck, checkedIn)
	}
	return nil
}

// AddVolunteer prompts for the new-volunteer form and submits it.
func (a *App) AddVolunteer(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role", os.Stdout)
	if err != nil {
		return err
	}
	schedule, err := getSimpleText(a.reader, "Enter schedule (optional)", os.Stdout)
	if err != nil {
		return err
	}

	form := services.VolunteerForm{Name: name, Email: email, Phone: phone, Role: role, Schedule: schedule}

	vol, err := a.volunteers.Create(ctx, form)
	if err != nil {
		reportAuthErr(err)
		return err
	}

	fmt.Printf("Created volunteer %d (%s)\n", vol.ID.Int64(), vol.Name)
	return nil
}

// CheckIn checks a volunteer in. An assignment is mandatory; the service
// refuses a check-in without one before any network call.
func (a *App) CheckIn(ctx context.Context) error {
	id, err := a.promptVolunteerID("Enter volunteer id")
	if err != nil {
		log.Println(err.Error())
		return err
	}
	assignment, err := getSimpleText(a.reader, "Enter assignment", os.Stdout)
	if err != nil {
		return err
	}

	vol, err := a.volunteers.CheckIn(ctx, id, assignment)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("%s checked in (%s)\n", vol.Name, vol.CurrentAssignment)
	return nil
}

// CheckOut checks a volunteer out.
func (a *App) CheckOut(ctx context.Context) error {
	id, err := a.promptVolunteerID("Enter volunteer id")
	if err != nil {
		log.Println(err.Error())
		return err
	}

	vol, err := a.volunteers.CheckOut(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("%s checked out\n", vol.Name)
	return nil
}

// Approve approves or rejects a set of volunteers. The underlying bulk
// operation is best-effort and sequential; the printed counts reflect how
// far it got.
func (a *App) Approve(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Enter volunteer ids (comma separated)", os.Stdout)
	if err != nil {
		return err
	}

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Printf("invalid volunteer id %q", part)
			return err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		fmt.Println("Nothing selected.")
		return nil
	}

	approved, err := getYesNo(a.reader, "Approve", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.volunteers.ApproveSelected(ctx, ids, approved)
	if err != nil {
		log.Println(err.Error())
	}
	fmt.Printf("Succeeded: %d, failed: %d\n", res.Succeeded, res.Failed)
	return err
}
