package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 한글/영문/숫자/밑줄, 2~20자
var nicknamePattern = regexp.MustCompile(`^[가-힣a-zA-Z0-9_]{2,20}$`)

// RegisterValidators installs custom binding validators. Call once at startup.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("nickname", func(fl validator.FieldLevel) bool {
		return nicknamePattern.MatchString(fl.Field().String())
	})
}
