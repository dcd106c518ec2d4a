package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/trainmeet/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Validate - валидация структуры запроса. Ошибки валидации превращаются в
// ErrInvalidInput с перечнем полей в Details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Tag()
	}

	return errors.ErrInvalidInput.WithDetails(map[string]interface{}{
		"fields": fields,
	})
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
