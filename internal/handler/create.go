package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"erpforms/internal/logger"
	"erpforms/internal/middleware"
	"erpforms/internal/model"
	"erpforms/internal/service"
	"erpforms/internal/validation"
	"erpforms/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// createRecord binds the JSON body into Req, runs create and writes the outcome.
func createRecord[Req any, T any](c *gin.Context, create func(context.Context, Req) (service.Result[T], error)) {
	var req Req
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			c.JSON(http.StatusUnprocessableEntity, response.Rejected(
				http.StatusUnprocessableEntity, "Please correct the errors below.",
				map[string]string{typeErr.Field: typeMismatchMessage(typeErr.Type)}, nil, submittedValues(c)))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	ctx := service.WithActor(c.Request.Context(), middleware.Subject(c))
	res, err := create(ctx, req)
	if err != nil {
		writeCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Created(http.StatusCreated, res.Record, res.Message))
}

// typeMismatchMessage is the field error for a JSON value of the wrong type.
func typeMismatchMessage(t reflect.Type) string {
	if t == nil {
		return "Enter a valid value."
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Enter a whole number."
	case reflect.Float32, reflect.Float64:
		return "Enter a number."
	case reflect.Bool:
		return "Enter a valid boolean."
	}
	return "Enter a valid value."
}

// submittedValues returns the raw request body as a field map so rejected forms can be redisplayed.
func submittedValues(c *gin.Context) map[string]any {
	raw, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return nil
	}
	body, _ := raw.([]byte)
	values := map[string]any{}
	if err := json.Unmarshal(body, &values); err != nil {
		return nil
	}
	return values
}

func writeCreateError(c *gin.Context, err error) {
	var verrs *validation.Errors
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, response.Rejected(
			http.StatusUnprocessableEntity, "Please correct the errors below.", verrs.Fields, verrs.Form, submittedValues(c)))
	case errors.As(err, &conflict):
		fields := map[string]string{}
		if conflict.Field != "" {
			fields[conflict.Field] = conflict.Message
		}
		c.JSON(http.StatusConflict, response.Rejected(
			http.StatusConflict, conflict.Message, fields, nil, submittedValues(c)))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
	default:
		logger.FromGin(c).Error("create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Internal server error"))
	}
}

// nextCode serves the code preview of entity.
func nextCode(svc service.NextCodeService, entity model.Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.NextCode(c.Request.Context(), entity)
		if err != nil {
			logger.FromGin(c).Error("next code failed", zap.String("entity", string(entity)), zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to compute next code"))
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
	}
}
