package simple

// SocketWrench is an exported type and should be discovered.
type SocketWrench struct {
	Size int
}

// NewSocketWrench is an exported constructor and should be discovered.
func NewSocketWrench(size int) *SocketWrench {
	return &SocketWrench{Size: size}
}

// Tighten is a method and should be ignored.
func (w *SocketWrench) Tighten() {}

// helper is unexported and should be ignored.
func helper() {}

type hiddenGauge struct{}

var _ = hiddenGauge{}
var _ = helper
