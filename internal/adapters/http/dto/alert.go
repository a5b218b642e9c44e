package dto

import (
	"net/http"

	"github.com/jsamuelsen11/robot-service/internal/domain"
)

const (
	// ApplicationName prefixes alert header names and success alert keys.
	ApplicationName = "micro1App"

	// RobotEntityName is the entity name carried in robot alerts.
	RobotEntityName = "micro1Robot"
)

// Error keys for identity precondition failures.
const (
	ErrorKeyIDExists = "idexists"
	ErrorKeyIDNull   = "idnull"
)

// Alert header names.
var (
	HeaderAlert  = "X-" + ApplicationName + "-alert"
	HeaderError  = "X-" + ApplicationName + "-error"
	HeaderParams = "X-" + ApplicationName + "-params"
)

// BadRequestAlertError is a request precondition failure reported to the
// client with an entity name and a machine-readable error key.
type BadRequestAlertError struct {
	Message    string
	EntityName string
	ErrorKey   string
}

func (e *BadRequestAlertError) Error() string {
	return e.Message
}

// Unwrap returns domain.ErrValidation so the error maps to 400.
func (e *BadRequestAlertError) Unwrap() error {
	return domain.ErrValidation
}

// ProblemMessage is the message key placed in the problem body, e.g. "error.idexists".
func (e *BadRequestAlertError) ProblemMessage() string {
	return "error." + e.ErrorKey
}

// SetCreationAlert sets the headers announcing a created entity.
func SetCreationAlert(h http.Header, entityName, id string) {
	setAlert(h, entityName, "created", id)
}

// SetUpdateAlert sets the headers announcing an updated entity.
func SetUpdateAlert(h http.Header, entityName, id string) {
	setAlert(h, entityName, "updated", id)
}

// SetDeletionAlert sets the headers announcing a deleted entity.
func SetDeletionAlert(h http.Header, entityName, id string) {
	setAlert(h, entityName, "deleted", id)
}

// SetFailureAlert sets the headers describing a rejected request.
func SetFailureAlert(h http.Header, entityName, errorKey string) {
	h.Set(HeaderError, "error."+errorKey)
	h.Set(HeaderParams, entityName)
}

func setAlert(h http.Header, entityName, action, param string) {
	h.Set(HeaderAlert, ApplicationName+"."+entityName+"."+action)
	h.Set(HeaderParams, param)
}
