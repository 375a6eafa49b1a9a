package helper

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"ecommerce-api/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

// HTTPHelper writes the API's JSON bodies. Every error body carries a
// "message"; store errors add "error", validation errors add "errors".
type HTTPHelper struct {
	Translator ut.Translator
}

// GetStatusCode maps a service error to an HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ParseID reads a positive integer path parameter.
func (u *HTTPHelper) ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (u *HTTPHelper) SendMessage(c *gin.Context, code int, message string) {
	c.JSON(code, models.MessageResponse{Message: message})
}

// SendSuccess sends data as the whole body.
func (u *HTTPHelper) SendSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.SendMessage(c, http.StatusBadRequest, message)
}

func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	u.SendMessage(c, http.StatusNotFound, message)
}

func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.SendMessage(c, http.StatusUnauthorized, message)
}

// SendDatabaseError surfaces the underlying store error.
func (u *HTTPHelper) SendDatabaseError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": message,
		"error":   err.Error(),
	})
}

// SendBindError answers a failed ShouldBindJSON. Validation failures are
// translated per field; anything else (malformed JSON, wrong types) is
// reported as is.
func (u *HTTPHelper) SendBindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		u.SendValidationError(c, validationErrors)
		return
	}
	u.SendBadRequest(c, err.Error())
}

// SendValidationError sends 400 with the translated messages keyed by
// field name.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	for _, err := range validationErrors {
		errKey := Underscore(err.Field())
		msg := err.(error).Error()
		if u.Translator != nil {
			msg = err.Translate(u.Translator)
		}
		errorResponse[errKey] = append(errorResponse[errKey], msg)
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation failed",
		"errors":  errorResponse,
	})
}

// SendServiceError picks the status for err and writes the matching body.
// notFoundMessage is used for 404s.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error, notFoundMessage string) {
	switch u.GetStatusCode(err) {
	case http.StatusNotFound:
		u.SendNotFoundError(c, notFoundMessage)
	case http.StatusBadRequest:
		u.SendBadRequest(c, err.Error())
	default:
		u.SendDatabaseError(c, "Internal server error", err)
	}
}

// Underscore converts camelCase or PascalCase to snake_case.
func Underscore(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
