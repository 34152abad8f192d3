// config.go - Haupt-Konfigurationsfunktionen fuer imageprep
//
// Dieses Modul enthaelt:
// - BatchTimeout: Gibt das Timeout fuer einen Batch zurueck (IMAGEPREP_BATCH_TIMEOUT)
// - StdEpsilon: Gibt die Schwelle fuer degenerierte Bilder zurueck (IMAGEPREP_STD_EPSILON)
// - LogLevel: Gibt Log-Level zurueck (IMAGEPREP_DEBUG)
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Pipeline-Groessen und Feature-Flags
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// BatchTimeout gibt das Timeout fuer einen kompletten Batch zurueck
// Konfigurierbar via IMAGEPREP_BATCH_TIMEOUT (Dauer oder Sekunden)
// 0 oder negative Werte = unendlich
// Default: 5 Minuten
func BatchTimeout() (timeout time.Duration) {
	timeout = 5 * time.Minute
	if s := Var("IMAGEPREP_BATCH_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			timeout = d
		} else if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			timeout = time.Duration(n) * time.Second
		} else {
			slog.Warn("invalid environment variable, using default", "key", "IMAGEPREP_BATCH_TIMEOUT", "value", s, "default", timeout)
		}
	}

	if timeout <= 0 {
		return time.Duration(math.MaxInt64)
	}

	return timeout
}

// StdEpsilon gibt die Schwelle zurueck, ab der ein Bild als einfarbig gilt
// Konfigurierbar via IMAGEPREP_STD_EPSILON
// Default: 1e-7
var StdEpsilon = Float("IMAGEPREP_STD_EPSILON", 1e-7)

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via IMAGEPREP_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("IMAGEPREP_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
