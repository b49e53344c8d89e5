package particles

import "github.com/pthm-cable/ember/canvas"

// EmitterConfig describes one burst. It is a plain value: every field must
// be filled in by the caller, nothing is defaulted here.
//
// Directions are radians with 0 along +x; positive angles rotate toward +y,
// which is screen-down.
type EmitterConfig struct {
	Count         int
	SpeedMin      float32
	SpeedMax      float32
	SpreadRadians float32
	BaseDirection float32
	LifeMin       float32 // seconds
	LifeMax       float32
	SizeMin       float32 // square side, pixels
	SizeMax       float32
	StartColor    canvas.Color
	EndColor      canvas.Color
}
