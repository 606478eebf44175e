package repository

import (
	"os"
	"strconv"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// optionalFloatToString keeps nil as nil so the attribute is omitted and the
// warehouse column stays null instead of silently becoming zero.
func optionalFloatToString(v *float64) *string {
	if v == nil {
		return nil
	}
	s := floatToString(*v)
	return &s
}

func optionalStringToFloat(v *string) *float64 {
	if v == nil {
		return nil
	}
	f, err := strconv.ParseFloat(*v, 64)
	if err != nil {
		return nil
	}
	return &f
}
