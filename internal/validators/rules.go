package validators

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
)

var registerOnce sync.Once

// RegisterBindingRules adds the booking tags to gin's validator:
//
//	isodate  YYYY-MM-DD calendar date
//	clock    HH:MM or HH:MM:00
func RegisterBindingRules() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		err = Register(v)
	})
	return err
}

func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("isodate", isISODate); err != nil {
		return err
	}
	return v.RegisterValidation("clock", isClock)
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}

func isClock(fl validator.FieldLevel) bool {
	_, err := domain.ParseClock(fl.Field().String())
	return err == nil
}
