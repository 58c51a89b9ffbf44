package validation

import "devicecheck/internal/config"

// paramRule describes how one parameter key is checked.
type paramRule struct {
	kind Kind
	cons Constraint
	// readOnly parameters are settable at creation only, never on update
	readOnly bool
}

// deviceRules holds everything the validator knows about one device type.
type deviceRules struct {
	// human readable type name, used in messages
	name string
	// parameter keys accepted under "parameters"
	allowed *StringSet
	// accepted values for the top-level "status" field
	status *StringSet
	params map[string]paramRule
}

// buildRules assembles the rule registry from config, one entry per device
// type. Adding a device type means adding an entry here.
func buildRules(cfg *config.Config) map[string]*deviceRules {
	return map[string]*deviceRules{
		"door_lock": {
			name:    "door lock",
			allowed: NewStringSet(cfg.LockParameters...),
			status:  NewStringSet("locked", "unlocked"),
			params: map[string]paramRule{
				"auto_lock_enabled": {kind: KindBool, readOnly: true},
				"battery_level":     {kind: KindInt, cons: Between(cfg.MinBattery, cfg.MaxBattery)},
			},
		},
		"curtain": {
			name:    "curtain",
			allowed: NewStringSet(cfg.CurtainParameters...),
			status:  NewStringSet("open", "closed"),
			params: map[string]paramRule{
				"position": {kind: KindInt, cons: Between(cfg.MinPosition, cfg.MaxPosition)},
			},
		},
		"air_conditioner": {
			name:    "air conditioner",
			allowed: NewStringSet(cfg.ACParameters...),
			status:  NewStringSet("on", "off"),
			params: map[string]paramRule{
				"temperature": {kind: KindInt, cons: Between(cfg.MinACTemp, cfg.MaxACTemp)},
				"mode":        {kind: KindString, cons: OneOf(NewStringSet(cfg.ACModes...))},
				// TODO: this rule is registered under 'fan' but the allowed set
				// declares 'fan_speed', so fan_speed values are accepted without
				// a value check; confirm which key clients send before renaming.
				"fan":   {kind: KindString, cons: OneOf(NewStringSet(cfg.ACFanSettings...))},
				"swing": {kind: KindString, cons: OneOf(NewStringSet(cfg.ACSwingModes...))},
			},
		},
		"water_heater": {
			name:    "water heater",
			allowed: NewStringSet(cfg.WaterHeaterParameters...),
			status:  NewStringSet("on", "off"),
			params: map[string]paramRule{
				"temperature":        {kind: KindInt},
				"target_temperature": {kind: KindInt, cons: Between(cfg.MinWaterTemp, cfg.MaxWaterTemp)},
				"is_heating":         {kind: KindBool},
				"timer_enabled":      {kind: KindBool},
				"scheduled_on":       {kind: KindString, cons: TimeFormat()},
				"scheduled_off":      {kind: KindString, cons: TimeFormat()},
			},
		},
		"light": {
			name:    "light",
			allowed: NewStringSet(cfg.LightParameters...),
			status:  NewStringSet("on", "off"),
			params: map[string]paramRule{
				"brightness":    {kind: KindInt, cons: Between(cfg.MinBrightness, cfg.MaxBrightness)},
				"color":         {kind: KindString, cons: ColorFormat()},
				"is_dimmable":   {kind: KindBool, readOnly: true},
				"dynamic_color": {kind: KindBool, readOnly: true},
			},
		},
	}
}
