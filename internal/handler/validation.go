package handler

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/user/filmorate/internal/model"
)

// DateLayout 请求与响应中的日期格式
const DateLayout = "2006-01-02"

// RegisterValidators 向 gin 的校验器注册自定义规则
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	rules := map[string]validator.Func{
		"releasedate": validReleaseDate,
		"pastdate":    validPastDate,
		"nospaces":    noSpaces,
		"notblank":    notBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// validReleaseDate 上映日期不早于 1895-12-28
func validReleaseDate(fl validator.FieldLevel) bool {
	t, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil && !t.Before(model.ReleaseDateFloor)
}

// validPastDate 日期必须早于今天
func validPastDate(fl validator.FieldLevel) bool {
	t, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return t.Before(today)
}

func noSpaces(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// parseDate 已通过 datetime 校验的日期字符串
func parseDate(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}
