package validation

import (
	"fmt"
	"sort"

	"devicecheck/internal/config"
)

// Mode selects which validation path applies to a record.
type Mode int

const (
	// ModeNewDevice validates a complete record for a device being created.
	ModeNewDevice Mode = iota
	// ModeUpdate validates a partial record applied to an existing device.
	ModeUpdate
)

// Validator checks device records against per-device-type rules. Construct it
// once at startup and share it freely: validation only reads its tables and
// never mutates the input record.
type Validator struct {
	checker       *Checker
	deviceTypes   *StringSet
	required      *StringSet
	rules         map[string]*deviceRules
	defaultStatus *StringSet
	notify        FailureFunc
}

// NewValidator builds a validator from loaded configuration. notify receives
// the message of every failure; pass nil to log them with the standard logger.
func NewValidator(cfg *config.Config, notify FailureFunc) (*Validator, error) {
	if notify == nil {
		notify = defaultNotify
	}
	checker, err := NewChecker(cfg.TimeRegex, cfg.ColorRegex, notify)
	if err != nil {
		return nil, err
	}
	return &Validator{
		checker:       checker,
		deviceTypes:   NewStringSet(cfg.DeviceTypes...),
		required:      NewStringSet(cfg.DeviceParameters...),
		rules:         buildRules(cfg),
		defaultStatus: NewStringSet("on", "off"),
		notify:        notify,
	}, nil
}

// ValidateNewDevice checks a complete record for a device being created. The
// device type is taken from the record's own "type" field.
func (v *Validator) ValidateNewDevice(data map[string]interface{}) (bool, []string) {
	return v.Validate(data, ModeNewDevice, "")
}

// ValidateUpdate checks a partial record against an existing device's type.
func (v *Validator) ValidateUpdate(data map[string]interface{}, deviceType string) (bool, []string) {
	return v.Validate(data, ModeUpdate, deviceType)
}

// Validate checks a device record and returns whether it is valid together
// with every reason it is not. Errors accumulate: all independent problems in
// one record are reported together. deviceType is ignored in ModeNewDevice.
func (v *Validator) Validate(data map[string]interface{}, mode Mode, deviceType string) (bool, []string) {
	var errors []string

	if mode == ModeNewDevice {
		keys := NewStringSet(sortedKeys(data)...)
		if !keys.Equal(v.required) {
			msg := fmt.Sprintf("Incorrect field(s) in new device: %s, missing field(s) in new device: %s, must be exactly these fields: %s",
				keys.Minus(v.required), v.required.Minus(keys), v.required)
			v.notify(msg)
			return false, []string{msg}
		}
		if s, ok := data["type"].(string); ok {
			deviceType = s
		} else {
			deviceType = fmt.Sprintf("%v", data["type"])
		}
	} else {
		for _, field := range []string{"id", "type"} {
			if _, present := data[field]; present {
				msg := fmt.Sprintf("Cannot update read-only parameter '%s'", field)
				v.notify(msg)
				errors = append(errors, msg)
			}
		}
		if len(errors) > 0 {
			return false, errors
		}
	}

	if !v.deviceTypes.Has(deviceType) {
		msg := fmt.Sprintf("Incorrect device type %s, must be one of %s.", deviceType, v.deviceTypes)
		v.notify(msg)
		return false, []string{msg}
	}

	// A type in DEVICE_TYPES without a registry entry gets the default status
	// values and no parameter rules.
	rules := v.rules[deviceType]

	if status, present := data["status"]; present {
		allowed := v.defaultStatus
		if rules != nil {
			allowed = rules.status
		}
		if ok, msg := v.checker.Check(status, "'status'", KindString, OneOf(allowed)); !ok {
			errors = append(errors, msg)
		}
	}

	if params, present := data["parameters"]; present {
		errors = append(errors, v.validateParameters(params, rules, mode)...)
	}

	// Other top-level keys are passed through uninspected in update mode.

	return len(errors) == 0, errors
}

// validateParameters checks the "parameters" sub-object. A non-map value or a
// disallowed key set stops further parameter checks, value errors accumulate.
func (v *Validator) validateParameters(params interface{}, rules *deviceRules, mode Mode) []string {
	if ok, msg := v.checker.Check(params, "'parameters'", KindMap, NoConstraint()); !ok {
		return []string{msg}
	}
	if rules == nil {
		return nil
	}
	paramMap := params.(map[string]interface{})

	extra := NewStringSet(sortedKeys(paramMap)...).Minus(rules.allowed)
	if extra.Len() > 0 {
		msg := fmt.Sprintf("Disallowed parameters for %s %s, allowed parameters: %s", rules.name, extra, rules.allowed)
		v.notify(msg)
		return []string{msg}
	}

	var errors []string
	for _, key := range sortedKeys(paramMap) {
		rule, known := rules.params[key]
		if !known {
			continue
		}
		if rule.readOnly && mode != ModeNewDevice {
			msg := fmt.Sprintf("Cannot update read-only parameter '%s'.", key)
			v.notify(msg)
			errors = append(errors, msg)
			continue
		}
		if ok, msg := v.checker.Check(paramMap[key], "'"+key+"'", rule.kind, rule.cons); !ok {
			errors = append(errors, msg)
		}
	}
	return errors
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
