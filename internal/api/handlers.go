package api

import (
	"errors"

	"github.com/elarahealth/elara/internal/db"
	"github.com/elarahealth/elara/internal/services"
)

type Handler struct {
	repos         *db.Repositories
	reminders     *services.ReminderService
	checks        *services.CheckService
	secretKey     []byte
	cookieSecure  bool
	dispatchToken string
}

type Config struct {
	Secret        string
	CookieSecure  bool
	DispatchToken string
}

func NewHandler(repos *db.Repositories, reminders *services.ReminderService, checks *services.CheckService, config Config) (*Handler, error) {
	if repos == nil {
		return nil, errors.New("repositories are required")
	}
	if reminders == nil {
		return nil, errors.New("reminder service is required")
	}
	if checks == nil {
		return nil, errors.New("check service is required")
	}
	if config.Secret == "" {
		return nil, errors.New("secret key is required")
	}
	if config.DispatchToken == "" {
		return nil, errors.New("dispatch token is required")
	}

	return &Handler{
		repos:         repos,
		reminders:     reminders,
		checks:        checks,
		secretKey:     []byte(config.Secret),
		cookieSecure:  config.CookieSecure,
		dispatchToken: config.DispatchToken,
	}, nil
}
