package platform

// SetupTestUIThread marks the calling goroutine as the UI thread and installs
// a synchronous dispatch function. The cleanup function should be
// testing.T.Cleanup or equivalent.
//
//	platform.SetupTestUIThread(t.Cleanup)
//
// Subtests started with t.Run run on their own goroutine and must call it again.
func SetupTestUIThread(cleanup func(func())) {
	MarkUIThread()
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
}

// ResetForTest clears the UI thread designation and the dispatch function.
func ResetForTest() {
	ResetUIThread()
	RegisterDispatch(nil)
}
