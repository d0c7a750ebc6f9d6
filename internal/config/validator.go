package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	flexerrors "github.com/alexisbeaulieu97/flexforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	jsIdentifier  = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("js_ident", func(fl validator.FieldLevel) bool {
			return jsIdentifier.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateLayout performs schema and cross-field validation on a layout file.
// Style values are not checked; any value is passed through to the exports.
func ValidateLayout(file *LayoutFile) error {
	if file == nil {
		return flexerrors.NewValidationError("layout", "layout is nil", nil)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}

	for _, name := range file.Container.Keys() {
		if strings.TrimSpace(name) == "" {
			return flexerrors.NewValidationError("container", "property name is empty", nil)
		}
	}

	seen := make(map[int]int, len(file.Items))
	for i, item := range file.Items {
		if first, exists := seen[item.ID]; exists {
			return flexerrors.NewValidationError(
				fieldForItem(i, "id"),
				fmt.Sprintf("duplicate item id %d (first used by items[%d])", item.ID, first),
				nil,
			)
		}
		seen[item.ID] = i

		for _, name := range item.Styles.Keys() {
			if strings.TrimSpace(name) == "" {
				return flexerrors.NewValidationError(fieldForItem(i, "styles"), "property name is empty", nil)
			}
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return flexerrors.NewValidationError(field, msg, err)
	}

	return flexerrors.NewValidationError("layout", err.Error(), err)
}

// yamlishFieldName turns "LayoutFile.Items[1].ID" into "items[1].id".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForItem(index int, field string) string {
	return fmt.Sprintf("items[%d].%s", index, field)
}
