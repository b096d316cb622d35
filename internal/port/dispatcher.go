package port

// Dispatcher runs work detached from the caller. Dispatch reports false when
// the work was not accepted (shutting down).
type Dispatcher interface {
	Dispatch(assetID, originalPath string) bool
}
