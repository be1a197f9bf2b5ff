package core

// DeprecationWarning is emitted when a deprecated method is called. It is
// advisory: the call still proceeds.
type DeprecationWarning struct {
	Method      string
	Replacement string
	Message     string
}

func (w DeprecationWarning) Error() string {
	if w.Message != "" {
		return w.Message
	}
	if w.Replacement != "" {
		return "'" + w.Method + "' is deprecated, use '" + w.Replacement + "' instead"
	}
	return "'" + w.Method + "' is deprecated"
}

// DeprecationHandler receives deprecation warnings.
type DeprecationHandler func(DeprecationWarning)
