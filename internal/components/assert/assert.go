package assert

// NotNil panics on a nil interface value, it is meant for constructor arguments
// that the program cannot run without.
func NotNil(value any) {
	if value == nil {
		panic("expected value to be not nil")
	}
}

func NotEmptyStr(str string) {
	if str == "" {
		panic("expected string to be non-empty")
	}
}
