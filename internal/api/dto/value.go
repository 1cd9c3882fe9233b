package dto

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

// Truthy applies the truthiness rules the API uses for field presence: null, false, 0 and
// the empty string count as absent.
func Truthy(v ldvalue.Value) bool {
	switch v.Type() {
	case ldvalue.NullType:
		return false
	case ldvalue.BoolType:
		return v.BoolValue()
	case ldvalue.NumberType:
		return v.Float64Value() != 0
	case ldvalue.StringType:
		return v.StringValue() != ""
	default:
		return true
	}
}

// AsString returns the string held by v, if any.
func AsString(v ldvalue.Value) (string, bool) {
	if v.Type() != ldvalue.StringType {
		return "", false
	}
	return v.StringValue(), true
}
