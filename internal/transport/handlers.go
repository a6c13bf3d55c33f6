package transport

import (
	"github.com/grandmixture/profile-card/internal/service"
)

type ProfileHandler struct {
	service           service.ProfileService
	apiKey            string
	defaultWeaponSize int
}

func NewProfileHandler(service service.ProfileService, apiKey string, defaultWeaponSize int) *ProfileHandler {
	return &ProfileHandler{
		service:           service,
		apiKey:            apiKey,
		defaultWeaponSize: defaultWeaponSize,
	}
}
