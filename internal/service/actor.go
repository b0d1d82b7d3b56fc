package service

import (
	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/models"
)

// Actor is the authenticated caller as established by the session middleware
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsHospital() bool { return a.Role == models.RoleHospital }

func (a Actor) IsPatient() bool { return a.Role == models.RolePatient }

// requireHospital allows only the session of hospitalID itself
func requireHospital(actor Actor, hospitalID uint) error {
	if !actor.IsHospital() || actor.ID != hospitalID {
		return apperr.Forbidden("access denied: you can only manage your own hospital")
	}
	return nil
}

func requirePatient(actor Actor) error {
	if !actor.IsPatient() {
		return apperr.Forbidden("patient access required")
	}
	return nil
}

func actorID(actor Actor) *uint {
	if actor.ID == 0 {
		return nil
	}
	id := actor.ID
	return &id
}
