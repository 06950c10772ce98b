package ir

import "encoding/json"

// Interface converts the node to the plain interface{} shapes used by
// encoding/json: nil, bool, float64, string, []interface{} and
// map[string]interface{}.
func (y *Node) Interface() interface{} {
	if y == nil {
		return nil
	}
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case NumberType:
		return y.Float64
	case StringType:
		return y.String
	case ArrayType:
		vs := make([]interface{}, len(y.Values))
		for i, v := range y.Values {
			vs[i] = v.Interface()
		}
		return vs
	case ObjectType:
		m := make(map[string]interface{}, len(y.Fields))
		for k, v := range y.Fields {
			m[k] = v.Interface()
		}
		return m
	}
	return nil
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(y.Interface())
}
