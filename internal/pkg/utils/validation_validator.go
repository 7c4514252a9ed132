package utils

import (
	"audit-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("condition_type", validateConditionType)
	validate.RegisterValidation("rule_action", validateRuleAction)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateQuestionType(fl validator.FieldLevel) bool {
	return models.QuestionType(fl.Field().String()).IsValid()
}

func validateConditionType(fl validator.FieldLevel) bool {
	return models.ConditionType(fl.Field().String()).IsValid()
}

func validateRuleAction(fl validator.FieldLevel) bool {
	return models.RuleAction(fl.Field().String()).IsValid()
}
