package services

import (
	"context"
	"errors"

	"github.com/avelev/schoolguard/internal/client/api"
	"github.com/avelev/schoolguard/internal/client/models"
	"github.com/avelev/schoolguard/internal/logging"
)

// ErrAssignmentRequired rejects a check-in with no assignment selected.
var ErrAssignmentRequired = errors.New("assignment is required for check-in")

// BulkResult is the aggregate outcome of a best-effort sequential bulk
// operation. There is no cross-request transactionality: a partial
// failure leaves the earlier items changed and the rest untouched.
type BulkResult struct {
	Succeeded int
	Failed    int
}

// VolunteerService covers the volunteer roster operations.
type VolunteerService interface {
	List(ctx context.Context) ([]models.Volunteer, error)
	Create(ctx context.Context, form VolunteerForm) (*models.Volunteer, error)
	CheckIn(ctx context.Context, id int64, assignment string) (*models.Volunteer, error)
	CheckOut(ctx context.Context, id int64) (*models.Volunteer, error)
	ApproveSelected(ctx context.Context, ids []int64, approved bool) (BulkResult, error)
}

type volunteerService struct {
	client api.Client
	logger logging.Logger
}

func NewVolunteerService(client api.Client, logger logging.Logger) VolunteerService {
	return &volunteerService{client: client, logger: logger.With("component", "volunteers")}
}

func (v *volunteerService) List(ctx context.Context) ([]models.Volunteer, error) {
	return v.client.GetVolunteers(ctx)
}

func (v *volunteerService) Create(ctx context.Context, form VolunteerForm) (*models.Volunteer, error) {
	if err := checkForm(form); err != nil {
		return nil, err
	}

	return v.client.CreateVolunteer(ctx, api.CreateVolunteerRequest{
		Name:             form.Name,
		Email:            form.Email,
		Phone:            form.Phone,
		Role:             form.Role,
		Schedule:         form.Schedule,
		EmergencyContact: form.EmergencyContact,
		Skills:           form.Skills,
	})
}

func (v *volunteerService) CheckIn(ctx context.Context, id int64, assignment string) (*models.Volunteer, error) {
	if assignment == "" {
		return nil, ErrAssignmentRequired
	}
	return v.client.CheckInVolunteer(ctx, id, assignment)
}

func (v *volunteerService) CheckOut(ctx context.Context, id int64) (*models.Volunteer, error) {
	return v.client.CheckOutVolunteer(ctx, id)
}

// ApproveSelected approves (or rejects) the given volunteers one request
// at a time. The loop stops at the first failure; the caller learns how
// many requests landed before it. There is no batch endpoint to do
// better.
func (v *volunteerService) ApproveSelected(ctx context.Context, ids []int64, approved bool) (BulkResult, error) {
	var res BulkResult
	for i, id := range ids {
		if err := v.client.ApproveVolunteer(ctx, id, approved); err != nil {
			res.Succeeded = i
			res.Failed = len(ids) - i
			v.logger.Warn(ctx, "bulk approve aborted", "succeeded", res.Succeeded, "failed", res.Failed, "error", err)
			return res, err
		}
	}
	res.Succeeded = len(ids)
	return res, nil
}
