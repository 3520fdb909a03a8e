package simple

// IgnoredByWalk lives in a test file and should never be discovered.
type IgnoredByWalk struct{}
