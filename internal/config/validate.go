package config

import "fmt"

func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

func NormalizeServe(values ServeSettings) (ServeSettings, error) {
	if err := ValidatePort(values.Port); err != nil {
		return values, err
	}
	return values, nil
}
