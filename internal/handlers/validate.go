package handlers

import (
	tiktok "github.com/StounhandJ/tiktok_downloader/internal/downloaders/tik_tok"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// строка содержит ссылку на ролик или короткую ссылку tiktok
	if err := v.RegisterValidation("tiktokurl", func(fl validator.FieldLevel) bool {
		return tiktok.IsValid(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}
