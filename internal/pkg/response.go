package pkg

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/codezest/catalog/internal/domain"
)

// Meta is attached to every response envelope.
type Meta struct {
	Timestamp string `json:"timestamp"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Response is the standard JSON envelope: {status, data|error, pagination?,
// meta}.
type Response struct {
	Status     string           `json:"status"`
	Data       any              `json:"data,omitempty"`
	Error      *ErrorBody       `json:"error,omitempty"`
	Pagination *domain.PageMeta `json:"pagination,omitempty"`
	Meta       Meta             `json:"meta"`
}

func newMeta() Meta {
	return Meta{Timestamp: time.Now().UTC().Format(time.RFC3339)}
}

// Success sends a 200 envelope with the given data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: data, Meta: newMeta()})
}

// Created sends a 201 envelope with the given data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Status: "success", Data: data, Meta: newMeta()})
}

// Paginated sends a 200 envelope with list data and pagination metadata at
// the envelope level.
func Paginated[T any](c *gin.Context, result *domain.PageResult[T]) {
	meta := result.Pagination
	c.JSON(http.StatusOK, Response{
		Status:     "success",
		Data:       result.Data,
		Pagination: &meta,
		Meta:       newMeta(),
	})
}

// Error sends an error envelope. *domain.AppError values map to their HTTP
// status and stable wire code; anything else is reported as an internal
// error without leaking its message.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)

	msg := "internal error"
	var appErr *domain.AppError
	if errors.As(err, &appErr) && appErr.Code != domain.CodeInternal {
		msg = appErr.Message
	}

	c.JSON(status, Response{
		Status: "error",
		Error:  &ErrorBody{Code: domain.WireCode(err), Message: msg},
		Meta:   newMeta(),
	})
}

// BindAndValidate binds the request body to obj and validates it.
// On failure it sends a 422 validation envelope and returns false.
// Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		validationError(c, err, obj)
		return false
	}
	return true
}

// BindQuery binds query parameters to obj and validates them, mirroring
// BindAndValidate for GET endpoints.
func BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		validationError(c, err, obj)
		return false
	}
	return true
}

// validationError sends a 422 envelope with per-field details when err is a
// validator.ValidationErrors, preferring JSON tag names for fields.
func validationError(c *gin.Context, err error, obj any) {
	body := &ErrorBody{Code: "VALIDATION_ERROR", Message: "validation failed"}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		jsonTags := buildJSONTagMap(obj)
		fieldErrors := make(map[string]string, len(ve))
		for _, fe := range ve {
			name := fe.Field()
			if tag, ok := jsonTags[fe.StructField()]; ok {
				name = tag
			} else {
				name = strings.ToLower(name)
			}
			msg := fe.Tag()
			if fe.Param() != "" {
				msg += "=" + fe.Param()
			}
			fieldErrors[name] = msg
		}
		body.Details = fieldErrors
	} else {
		body.Message = err.Error()
	}

	c.JSON(http.StatusUnprocessableEntity, Response{
		Status: "error",
		Error:  body,
		Meta:   newMeta(),
	})
}

// buildJSONTagMap returns a map from struct field name to its JSON tag name.
// If obj is nil or not a struct (pointer), it returns an empty map.
func buildJSONTagMap(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if name := parseJSONTagName(tag); name != "" {
			m[f.Name] = name
		}
	}
	return m
}

// parseJSONTagName extracts the field name from a JSON struct tag value.
func parseJSONTagName(tag string) string {
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}
