package sub

// LaserPointer is an exported type in a nested package.
type LaserPointer struct{}

// Glow is an exported function in a nested package.
func Glow() string { return "glow" }
