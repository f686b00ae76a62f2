package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"hotelbooking/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the calendardate tag to gin's binding engine. It
// accepts every layout utils.ParseDate understands.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
			_, perr := utils.ParseDate(fl.Field().String())
			return perr == nil
		})
	})
	return err
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid request payload", bindingDetails(err))
		return false
	}
	return true
}

// BindQueryOrError binds query parameters with the same error shape as JSON bodies.
func BindQueryOrError[T any](c *gin.Context, dst *T) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_query", "invalid query parameters", bindingDetails(err))
		return false
	}
	return true
}

// bindingDetails turns validator errors into field -> rule pairs.
func bindingDetails(err error) any {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out[fe.Field()] = rule
	}
	return out
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_"+name, name+" must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
