package renderer

// Context pairs a Device with the device state the renderer tracks on the
// CPU side. Each Context is independent; two contexts never share the
// active-program record.
type Context struct {
	Device Device

	activeProgram Program
	programSwitch int
}

func NewContext(device Device) *Context {
	return &Context{Device: device}
}

// useProgram activates p unless it is already the active program.
func (c *Context) useProgram(p Program) {
	if c.activeProgram == p {
		return
	}
	c.Device.UseProgram(p)
	c.activeProgram = p
	c.programSwitch++
}

// forgetProgram clears the record when p is deleted so a recycled handle
// is activated again.
func (c *Context) forgetProgram(p Program) {
	if c.activeProgram == p {
		c.activeProgram = 0
	}
}

// ProgramSwitches reports how many times a program was actually activated.
func (c *Context) ProgramSwitches() int {
	return c.programSwitch
}
