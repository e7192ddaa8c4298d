package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	messagePrefix = "title : Validation Error!. "
	msgTooShort   = "This value is too short. It should have 3 characters or more."
	msgBlank      = "This value should not be blank."
)

// titleRule одно правило для заголовка: тег validator и текст ошибки
type titleRule struct {
	tag     string
	message string
}

// Правила проверяются по порядку, каждое дает свое сообщение
var titleRules = []titleRule{
	{tag: "min=3", message: msgTooShort},
	{tag: "notblank", message: msgBlank},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank нет среди встроенных правил, регистрируем из non-standard
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ValidateTitle проверяет заголовок заметки: не пустой (без учета пробелов)
// и не короче 3 символов. Возвращает по одному сообщению на каждое нарушенное правило
// или nil, если заголовок корректен.
func ValidateTitle(title string) []string {
	var messages []string
	for _, rule := range titleRules {
		if err := validate.Var(title, rule.tag); err != nil {
			messages = append(messages, messagePrefix+rule.message)
		}
	}
	return messages
}
