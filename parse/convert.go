package parse

import (
	"fmt"
	"time"

	"github.com/maxmalkin/sdiff/ir"
)

// fromValue converts the interface{} shapes produced by the JSON,
// YAML and TOML decoders into an ir.Node tree. All numeric types
// collapse to float64; non-string mapping keys are stringified.
func fromValue(v interface{}) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case float64:
		return ir.FromFloat(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case int:
		return ir.FromFloat(float64(x)), nil
	case int64:
		return ir.FromFloat(float64(x)), nil
	case uint64:
		return ir.FromFloat(float64(x)), nil
	case time.Time:
		// TOML datetimes keep their textual form.
		return ir.FromString(x.Format(time.RFC3339)), nil
	case []interface{}:
		values := make([]*ir.Node, len(x))
		for i, elem := range x {
			node, err := fromValue(elem)
			if err != nil {
				return nil, err
			}
			values[i] = node
		}
		return ir.FromSlice(values), nil
	case map[string]interface{}:
		fields := make(map[string]*ir.Node, len(x))
		for k, elem := range x {
			node, err := fromValue(elem)
			if err != nil {
				return nil, err
			}
			fields[k] = node
		}
		return ir.FromMap(fields), nil
	case map[interface{}]interface{}:
		fields := make(map[string]*ir.Node, len(x))
		for k, elem := range x {
			node, err := fromValue(elem)
			if err != nil {
				return nil, err
			}
			fields[stringifyKey(k)] = node
		}
		return ir.FromMap(fields), nil
	default:
		return nil, fmt.Errorf("cannot represent value of type %T", v)
	}
}

func stringifyKey(k interface{}) string {
	switch x := k.(type) {
	case string:
		return x
	case bool:
		return fmt.Sprintf("%t", x)
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
