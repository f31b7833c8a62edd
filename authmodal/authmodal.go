// Package authmodal tracks the shared sign-in overlay state. Protected
// actions open the modal instead of redirecting, so the user keeps their
// current location.
package authmodal

import "sync"

type Mode string

const (
	ModeSignIn Mode = "signin" // default
	ModeSignUp Mode = "signup"
	ModeReset  Mode = "reset"
)

// Controller is a process-wide open/closed flag plus the active form mode.
type Controller struct {
	mu    sync.Mutex
	open  bool
	mode  Mode
	opens int
}

func NewController() *Controller {
	return &Controller{mode: ModeSignIn}
}

func (c *Controller) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
	c.opens++
}

// Close hides the modal and resets it to the sign-in mode. It does not cancel
// any in-flight request.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
	c.mode = ModeSignIn
}

func (c *Controller) SetMode(m Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = m
}

func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Controller) CurrentMode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// OpenCount reports how many times the modal has been opened.
func (c *Controller) OpenCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opens
}
