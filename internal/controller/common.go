package controller

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

const (
	defaultLimit    = 5
	defaultOffset   = 0
	defaultUsername = ""
)

const (
	msgMalformedInput = "Input data is not formed correctly"
	msgNoUsername     = "Please provide your username"
	msgInternal       = "Error"
)

type errorResponse struct {
	Reason string `json:"reason"`
}

// respond writes the error body. Only unexpected errors go back to echo, so it logs them.
func respond(c echo.Context, status int, reason string, err error) error {
	if e := c.JSON(status, errorResponse{reason}); e != nil {
		return e
	}
	if status == http.StatusInternalServerError {
		return err
	}

	return nil
}

func getAllErrorMessages(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var builder strings.Builder
	for _, fe := range verrs {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return getMessageForString(fe)
	case reflect.Int, reflect.Int32, reflect.Int64:
		return getMessageForInt(fe)
	case reflect.Float32, reflect.Float64:
		return getMessageForFloat(fe)
	case reflect.Slice:
		return getMessageForSlice(fe)
	}

	return "Unknown error (2)"
}

func getMessageForInt(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForFloat(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gt":
		return "should be greater than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	case "datetime":
		return "should be a date formatted as " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForSlice(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return "should have at most " + fe.Param() + " entries"
	case "dive":
		return "contains an incorrect entry"
	}

	return "incorrect value passed"
}
