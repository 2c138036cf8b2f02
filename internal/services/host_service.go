package services

import (
	"encoding/json"
	"net/mail"
	"strconv"
	"time"

	"villagestay/internal/domain"
	"villagestay/internal/domain/models"
	"villagestay/internal/store"
	"villagestay/internal/utils"
)

const hostApplicationsKey = "villagestay:host-applications"

// HostService records become-a-host applications for later review and
// fires the acknowledgement notification.
type HostService struct {
	Store     store.KV
	Notifier  NotificationService
	RequestID string
}

// SubmitApplication validates and persists one application.
func (s HostService) SubmitApplication(app models.HostApplication) (models.HostApplication, error) {
	app.Name = utils.TrimOrEmpty(app.Name)
	app.Email = utils.TrimOrEmpty(app.Email)
	app.Phone = utils.TrimOrEmpty(app.Phone)
	app.PropertyName = utils.TrimOrEmpty(app.PropertyName)
	app.Village = utils.TrimOrEmpty(app.Village)
	app.State = utils.TrimOrEmpty(app.State)

	if app.Name == "" {
		return models.HostApplication{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if _, err := mail.ParseAddress(app.Email); err != nil {
		return models.HostApplication{}, domain.ValidationError{Field: "email", Msg: "invalid email address"}
	}
	if app.Phone == "" {
		return models.HostApplication{}, domain.ValidationError{Field: "phone", Msg: "required"}
	}
	if app.PropertyName == "" {
		return models.HostApplication{}, domain.ValidationError{Field: "property_name", Msg: "required"}
	}
	if app.Village == "" {
		return models.HostApplication{}, domain.ValidationError{Field: "village", Msg: "required"}
	}
	if app.Rooms < 1 {
		app.Rooms = 1
	}
	if app.Guests < 1 {
		app.Guests = 1
	}

	app.SubmittedAt = utils.NowUTC()
	app.ID = "HA" + strconv.FormatInt(time.Now().UnixMilli(), 10)

	list, err := s.load()
	if err != nil {
		return models.HostApplication{}, err
	}
	list = append(list, app)
	raw, err := json.Marshal(list)
	if err != nil {
		return models.HostApplication{}, domain.InternalError{Err: err}
	}
	if err := s.Store.Set(hostApplicationsKey, string(raw)); err != nil {
		return models.HostApplication{}, domain.InternalError{Err: err}
	}

	notifier := s.Notifier
	notifier.RequestID = s.RequestID
	notifier.SendHostApplicationConfirmation(app)

	utils.LogEvent(s.RequestID, "host", "apply", "id="+app.ID+" property="+app.PropertyName)
	return app, nil
}

func (s HostService) load() ([]models.HostApplication, error) {
	raw, ok, err := s.Store.Get(hostApplicationsKey)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	if !ok {
		return []models.HostApplication{}, nil
	}
	var out []models.HostApplication
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, domain.InternalError{Msg: "corrupt host applications", Err: err}
	}
	return out, nil
}
