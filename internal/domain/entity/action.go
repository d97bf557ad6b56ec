package entity

// Action is a mutating backend request issued by a page. Invalidates lists
// the cached views that must be refetched once it succeeds.
type Action struct {
	Method      string
	Endpoint    string
	Body        any
	Invalidates []ResourceRef
}
