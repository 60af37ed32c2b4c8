package apperrors

import (
	"errors"
	"fmt"
)

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

// ErrInvalidStatus marks a status value outside the user-settable set.
type ErrInvalidStatus struct {
	Status string
}

func (e *ErrInvalidStatus) Error() string {
	return fmt.Sprintf("invalid status: %s", e.Status)
}

func NewInvalidStatus(status string) error {
	return &ErrInvalidStatus{Status: status}
}

// ErrValidation marks malformed or incomplete request input.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

func NewValidation(message string) error {
	return &ErrValidation{Message: message}
}

func IsNotFound(err error) bool {
	var nf *ErrCampaignNotFound
	return errors.As(err, &nf)
}

func IsInvalidStatus(err error) bool {
	var is *ErrInvalidStatus
	return errors.As(err, &is)
}

func IsValidation(err error) bool {
	var v *ErrValidation
	return errors.As(err, &v)
}
