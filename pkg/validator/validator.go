package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("contact", contactValidator)
		if err != nil {
			log.Fatal("register contact validator failed")
		}
	}
}

// contact numbers: optional leading +, at least 7 digits
var contactPattern = regexp.MustCompile(`^\+?\d{7,15}$`)

var contactValidator validator.Func = func(fl validator.FieldLevel) bool {
	return contactPattern.MatchString(fl.Field().String())
}
