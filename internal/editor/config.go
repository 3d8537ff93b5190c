package editor

import (
	"os"
	"strconv"
)

// Room dimension limits enforced at the configuration boundary. The geometry
// core assumes positive, finite dimensions and never re-checks these.
const (
	MinRoomDimension = 100
	MaxRoomWidth     = 2000
	MaxRoomLength    = 2000
	MaxRoomHeight    = 500
)

// Config holds editor configuration options, loaded from the environment.
type Config struct {
	// Initial room dimensions in centimeters.
	RoomWidth  float64
	RoomLength float64
	RoomHeight float64

	// MoveStep is how far an arrow key moves the selected object, in cm.
	MoveStep float64
}

// LoadConfig reads the editor configuration from ROOMPLAN_* environment
// variables, clamping room dimensions to the supported range.
func LoadConfig() Config {
	return Config{
		RoomWidth:  clamp(envFloat("ROOMPLAN_ROOM_WIDTH", 400), MinRoomDimension, MaxRoomWidth),
		RoomLength: clamp(envFloat("ROOMPLAN_ROOM_LENGTH", 500), MinRoomDimension, MaxRoomLength),
		RoomHeight: clamp(envFloat("ROOMPLAN_ROOM_HEIGHT", 250), MinRoomDimension, MaxRoomHeight),
		MoveStep:   envFloat("ROOMPLAN_MOVE_STEP", 10),
	}
}

func envFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
