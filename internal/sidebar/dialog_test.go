package sidebar

import "testing"

func TestController_Exclusivity(t *testing.T) {
	var c Controller

	ctxA := c.Open("tile-a")
	ctxB := c.Open("tile-b")

	if c.OpenID() != "tile-b" {
		t.Fatalf("open dialog = %q, want tile-b", c.OpenID())
	}
	select {
	case <-ctxA.Done():
	default:
		t.Fatalf("opening B must release A's listener group")
	}
	select {
	case <-ctxB.Done():
		t.Fatalf("B's listener group must still be live")
	default:
	}
}

func TestController_EscapeAndOutsideClick(t *testing.T) {
	var c Controller

	ctx := c.Open("tile-a")
	if !c.HandleEscape() {
		t.Fatalf("escape with an open dialog must be consumed")
	}
	if c.IsOpen() {
		t.Fatalf("dialog still open after escape")
	}
	select {
	case <-ctx.Done():
	default:
		t.Fatalf("escape must release the listener group")
	}
	if c.HandleEscape() {
		t.Fatalf("escape with nothing open must not be consumed")
	}

	c.Open("tile-b")
	if c.HandleClick(true) {
		t.Fatalf("click inside the dialog must not dismiss it")
	}
	if !c.HandleClick(false) {
		t.Fatalf("outside click must dismiss")
	}
	if c.IsOpen() {
		t.Fatalf("dialog open after outside click")
	}
}

func TestController_CloseIdempotent(t *testing.T) {
	var c Controller
	c.Close()
	c.Open("tile-a")
	c.Close()
	c.Close()
	if c.IsOpen() {
		t.Fatalf("controller must stay closed")
	}
}

func TestAccordion_SingleOpen(t *testing.T) {
	var a Accordion
	if got := a.Toggle("one"); got != "one" {
		t.Fatalf("Toggle(one) = %q", got)
	}
	if got := a.Toggle("two"); got != "two" {
		t.Fatalf("opening two must close one, got %q", got)
	}
	if a.IsOpen("one") {
		t.Fatalf("section one must be closed")
	}
	if got := a.Toggle("two"); got != "" {
		t.Fatalf("re-toggling the open section must close it, got %q", got)
	}
}
