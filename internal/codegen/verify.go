package codegen

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	flexerrors "github.com/alexisbeaulieu97/flexforge/pkg/errors"
)

// VerifyJSX evaluates the container and item style objects that JSX emits and
// checks that every visible property comes back with the same value and type.
func VerifyJSX(doc layout.Document) error {
	vm := goja.New()

	if err := verifyObject(vm, "containerStyles", doc.Container); err != nil {
		return flexerrors.NewExportError(string(FormatJSX), "", err)
	}
	for _, item := range doc.Items {
		if err := verifyObject(vm, itemVar(item.ID), item.Styles); err != nil {
			return flexerrors.NewExportError(string(FormatJSX), "", err)
		}
	}
	return nil
}

func verifyObject(vm *goja.Runtime, name string, styles layout.Styles) error {
	value, err := vm.RunString("(" + styleObject(styles) + ")")
	if err != nil {
		return fmt.Errorf("%s does not evaluate: %w", name, err)
	}
	obj := value.ToObject(vm)

	props := visible(styles)
	if got := len(obj.Keys()); got != len(props) {
		return fmt.Errorf("%s has %d keys, want %d", name, got, len(props))
	}

	for _, p := range props {
		key := CamelCase(p.Name)
		got := obj.Get(key)
		if got == nil || goja.IsUndefined(got) {
			return fmt.Errorf("%s is missing %s", name, key)
		}

		if want, ok := p.Value.Float(); ok {
			if got.ToFloat() != want {
				return fmt.Errorf("%s.%s = %v, want %v", name, key, got, want)
			}
			continue
		}

		text, ok := got.Export().(string)
		if !ok || text != p.Value.String() {
			return fmt.Errorf("%s.%s = %v, want %q", name, key, got.Export(), p.Value.String())
		}
	}
	return nil
}
