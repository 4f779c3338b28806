package sidebar

import "context"

// Controller enforces dialog exclusivity: at most one tile dialog is open at
// a time, and its dismissal listeners (Escape key, outside click) live
// exactly as long as the dialog does.
//
// The listener group is modelled as a context: Open returns a context that is
// cancelled when the dialog closes, whatever path closed it. Re-opening first
// closes the previous dialog, so listener groups never accumulate.
type Controller struct {
	openID string
	ctx    context.Context
	cancel context.CancelFunc
}

// Open opens the dialog with the given id, closing any previously open
// dialog first. The returned context is the dialog's listener group: it is
// done once the dialog has closed.
func (c *Controller) Open(id string) context.Context {
	c.Close()
	c.openID = id
	c.ctx, c.cancel = context.WithCancel(context.Background())
	return c.ctx
}

// Close closes the open dialog and releases its listener group. Closing when
// nothing is open is a no-op.
func (c *Controller) Close() {
	if c.cancel != nil {
		c.cancel()
	}
	c.openID = ""
	c.ctx = nil
	c.cancel = nil
}

// OpenID returns the open dialog's id, or "" when closed.
func (c *Controller) OpenID() string { return c.openID }

func (c *Controller) IsOpen() bool { return c.openID != "" }

// HandleEscape closes the open dialog. Reports whether the key was consumed.
func (c *Controller) HandleEscape() bool {
	if !c.IsOpen() {
		return false
	}
	c.Close()
	return true
}

// HandleClick dismisses the open dialog when the click landed outside its
// bounds. Reports whether the dialog was closed.
func (c *Controller) HandleClick(insideDialog bool) bool {
	if !c.IsOpen() || insideDialog {
		return false
	}
	c.Close()
	return true
}

// Accordion keeps at most one collapsible section open: opening a section
// closes all of its siblings. This invariant is independent of the dialog
// invariant above.
type Accordion struct {
	open string
}

// Toggle opens the section (closing any sibling) or closes it if it was the
// open one. Returns the id of the now-open section, "" when all are closed.
func (a *Accordion) Toggle(id string) string {
	if a.open == id {
		a.open = ""
	} else {
		a.open = id
	}
	return a.open
}

func (a *Accordion) IsOpen(id string) bool { return a.open == id }
