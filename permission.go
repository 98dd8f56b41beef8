package holocard

// PermissionRequester asks the platform for orientation access. The call must
// not block; resolve may be invoked later from any goroutine, at most once
// is honoured. A rejected or failed request resolves with false.
type PermissionRequester interface {
	RequestOrientationPermission(resolve func(granted bool))
}

// PermissionRequesterFunc adapts a function to PermissionRequester.
type PermissionRequesterFunc func(resolve func(granted bool))

// RequestOrientationPermission implements PermissionRequester.
func (f PermissionRequesterFunc) RequestOrientationPermission(resolve func(granted bool)) {
	f(resolve)
}

// GrantPermission is a requester that grants immediately.
var GrantPermission PermissionRequester = PermissionRequesterFunc(func(resolve func(bool)) { resolve(true) })

// DenyPermission is a requester that denies immediately.
var DenyPermission PermissionRequester = PermissionRequesterFunc(func(resolve func(bool)) { resolve(false) })

// SetPermissionRequester sets the requester used by the one-time permission
// negotiation. Without one, a gated platform resolves as denied.
func (e *Engine) SetPermissionRequester(r PermissionRequester) {
	e.requester = r
}

// Permission returns the orientation permission state.
func (e *Engine) Permission() PermissionState {
	return e.permission
}

// DocumentTouch is the one-shot document-level touch listener. On platforms
// that gate orientation behind a permission prompt, the first call starts the
// negotiation; later calls do nothing.
func (e *Engine) DocumentTouch() {
	if !e.checkAlive("DocumentTouch") || !e.docListenerArmed {
		return
	}
	e.docListenerArmed = false

	if e.requester == nil {
		logf("[holocard] %s: no permission requester, orientation disabled", e.label())
		e.resolvePermission(false)
		return
	}
	e.debugf("requesting orientation permission")
	e.requester.RequestOrientationPermission(e.resolvePermission)
}

// resolvePermission posts the outcome for the next Update. Safe for
// concurrent use.
func (e *Engine) resolvePermission(granted bool) {
	select {
	case e.permResults <- granted:
	default:
	}
}

// drainPermission applies a posted outcome, if any. The state changes at
// most once per engine.
func (e *Engine) drainPermission() {
	var granted bool
	select {
	case granted = <-e.permResults:
	default:
		return
	}
	if e.permission != PermissionPending {
		return
	}
	if granted {
		e.permission = PermissionGranted
	} else {
		e.permission = PermissionDenied
	}
	logf("[holocard] %s: orientation permission %s", e.label(), e.permission)
	e.invalidate()
}
