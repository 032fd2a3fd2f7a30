package response

import "erpforms/pkg/pagination"

// Response represents a standard API response format
type Response struct {
	Status         string            `json:"status"`      // "success" or "error"
	StatusCode     int               `json:"status_code"` // HTTP status code
	Data           interface{}       `json:"data,omitempty"`
	Message        string            `json:"message,omitempty"`
	Error          string            `json:"error,omitempty"`
	Errors         map[string]string `json:"errors,omitempty"`
	NonFieldErrors []string          `json:"non_field_errors,omitempty"`
	Values         interface{}       `json:"values,omitempty"` // submitted values, echoed on rejection
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Created wraps a newly created record together with its confirmation message
func Created(statusCode int, data interface{}, message string) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// Rejected reports field and form failures and echoes the submitted values so the form can be redisplayed
func Rejected(statusCode int, err string, fields map[string]string, form []string, values interface{}) Response {
	return Response{
		Status:         "error",
		StatusCode:     statusCode,
		Error:          err,
		Errors:         fields,
		NonFieldErrors: form,
		Values:         values,
	}
}

// Paginated is the data payload of list endpoints
type Paginated struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

// SuccessWithPagination wraps one page of a list
func SuccessWithPagination(statusCode int, items interface{}, page, limit int, total int64) Response {
	return Success(statusCode, Paginated{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pagination.TotalPages(total, limit),
	})
}
