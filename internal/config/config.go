package config

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every tunable of the validation engine, resolved once at
// startup and read-only afterwards.
type Config struct {
	MinWaterTemp  int
	MaxWaterTemp  int
	MinACTemp     int
	MaxACTemp     int
	MinBrightness int
	MaxBrightness int
	MinPosition   int
	MaxPosition   int
	MinBattery    int
	MaxBattery    int

	DeviceTypes           []string
	DeviceParameters      []string
	WaterHeaterParameters []string
	LightParameters       []string
	ACParameters          []string
	LockParameters        []string
	CurtainParameters     []string
	ACModes               []string
	ACFanSettings         []string
	ACSwingModes          []string

	TimeRegex  string
	ColorRegex string
}

// LoadConfig reads configuration from .env or env vars, falling back to the
// documented defaults. List-valued keys are JSON string arrays.
func LoadConfig() (*Config, error) {
	// .env is optional, plain environment variables work the same way
	_ = godotenv.Load()

	viper.AutomaticEnv()
	setDefaults()

	cfg := &Config{
		MinWaterTemp:  viper.GetInt("VITE_MIN_WATER_TEMP"),
		MaxWaterTemp:  viper.GetInt("VITE_MAX_WATER_TEMP"),
		MinACTemp:     viper.GetInt("VITE_MIN_AC_TEMP"),
		MaxACTemp:     viper.GetInt("VITE_MAX_AC_TEMP"),
		MinBrightness: viper.GetInt("VITE_MIN_BRIGHTNESS"),
		MaxBrightness: viper.GetInt("VITE_MAX_BRIGHTNESS"),
		MinPosition:   viper.GetInt("MIN_POSITION"),
		MaxPosition:   viper.GetInt("MAX_POSITION"),
		MinBattery:    viper.GetInt("MIN_BATTERY"),
		MaxBattery:    viper.GetInt("MAX_BATTERY"),
		TimeRegex:     viper.GetString("VITE_TIME_REGEX"),
		ColorRegex:    viper.GetString("VITE_COLOR_REGEX"),
	}

	lists := []struct {
		key  string
		dest *[]string
	}{
		{"DEVICE_TYPES", &cfg.DeviceTypes},
		{"DEVICE_PARAMETERS", &cfg.DeviceParameters},
		{"WATER_HEATER_PARAMETERS", &cfg.WaterHeaterParameters},
		{"LIGHT_PARAMETERS", &cfg.LightParameters},
		{"AC_PARAMETERS", &cfg.ACParameters},
		{"LOCK_PARAMETERS", &cfg.LockParameters},
		{"CURTAIN_PARAMETERS", &cfg.CurtainParameters},
		{"AC_MODES", &cfg.ACModes},
		{"AC_FAN_SETTINGS", &cfg.ACFanSettings},
		{"AC_SWING_MODES", &cfg.ACSwingModes},
	}
	for _, l := range lists {
		values, err := stringList(l.key)
		if err != nil {
			return nil, err
		}
		*l.dest = values
	}

	return cfg, nil
}

func setDefaults() {
	// Temperature bounds are Celsius
	viper.SetDefault("VITE_MIN_WATER_TEMP", 49)
	viper.SetDefault("VITE_MAX_WATER_TEMP", 60)
	viper.SetDefault("VITE_MIN_AC_TEMP", 16)
	viper.SetDefault("VITE_MAX_AC_TEMP", 30)
	viper.SetDefault("VITE_MIN_BRIGHTNESS", 0)
	viper.SetDefault("VITE_MAX_BRIGHTNESS", 100)
	viper.SetDefault("MIN_POSITION", 0)
	viper.SetDefault("MAX_POSITION", 100)
	viper.SetDefault("MIN_BATTERY", 0)
	viper.SetDefault("MAX_BATTERY", 100)

	viper.SetDefault("DEVICE_TYPES", `["light","water_heater","air_conditioner","door_lock","curtain"]`)
	viper.SetDefault("DEVICE_PARAMETERS", `["id","type","room","name","status","parameters"]`)
	viper.SetDefault("WATER_HEATER_PARAMETERS", `["temperature","target_temperature","is_heating","timer_enabled","scheduled_on","scheduled_off"]`)
	viper.SetDefault("LIGHT_PARAMETERS", `["brightness","color","is_dimmable","dynamic_color"]`)
	viper.SetDefault("AC_PARAMETERS", `["temperature","mode","fan_speed","swing"]`)
	viper.SetDefault("LOCK_PARAMETERS", `["auto_lock_enabled","battery_level"]`)
	viper.SetDefault("CURTAIN_PARAMETERS", `["position"]`)
	viper.SetDefault("AC_MODES", `["cool","heat","fan"]`)
	viper.SetDefault("AC_FAN_SETTINGS", `["off","low","medium","high"]`)
	viper.SetDefault("AC_SWING_MODES", `["off","on","auto"]`)

	// Hours 00-23, minutes 00-59, optional seconds
	viper.SetDefault("VITE_TIME_REGEX", `^([01][0-9]|2[0-3]):([0-5][0-9])(:[0-5][0-9])?$`)
	// '#' followed by exactly 3 or 6 hex digits
	viper.SetDefault("VITE_COLOR_REGEX", `^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
}

func stringList(key string) ([]string, error) {
	raw := viper.GetString(key)
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("%s must be a JSON string array, got %q: %w", key, raw, err)
	}
	return values, nil
}
