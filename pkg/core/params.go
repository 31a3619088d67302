package core

import "strconv"

// Parameter is a single labelled value shown on a driver's status panel.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a driver displays for one frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam builds an integer-valued Parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(v)}
}

// BoolParam builds a boolean-valued Parameter rendered as on/off.
func BoolParam(key, label string, v bool) Parameter {
	value := "off"
	if v {
		value = "on"
	}
	return Parameter{Key: key, Label: label, Value: value}
}

// Lookup returns the value stored under key in any group.
func (s ParameterSnapshot) Lookup(key string) (string, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	return "", false
}
