package config

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/genolab/pcrmix/internal/pcr"
)

// ConcentrationHookFunc decodes config and environment values into a
// stock Concentration, accepting both the bottle label ("5X") and the
// bare factor (5).
func ConcentrationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(pcr.X2) {
			return data, nil
		}
		return pcr.ParseConcentration(fmt.Sprintf("%v", data))
	}
}
