package renderer

import (
	"fmt"

	"fireball/core"
	"fireball/math"
)

// Attribute and uniform names expected in shader sources.
const (
	AttrPosition = "vs_Pos"
	AttrNormal   = "vs_Nor"
	AttrColor    = "vs_Col"

	UniformModel          = "u_Model"
	UniformModelInvTr     = "u_ModelInvTr"
	UniformViewProj       = "u_ViewProj"
	UniformBaseColor      = "u_BaseColor"
	UniformSecondaryColor = "u_SecondaryColor"
	UniformTertiaryColor  = "u_TertiaryColor"
	UniformTime           = "u_Time"
	UniformPersistence    = "u_Persistence"
	UniformAmplitude      = "u_Amplitude"
	UniformFrequency      = "u_Frequency"
	UniformOctaves        = "u_Octaves"
)

// ShaderSource is the text of one pipeline stage.
type ShaderSource struct {
	Stage  ShaderStage
	Source string
}

// CompileError carries the compiler diagnostic of a failed stage.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compile failed: %s", e.Stage, e.Log)
}

// LinkError carries the linker diagnostic of a failed program.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program link failed: %s", e.Log)
}

// ShaderProgram is a linked program with its attribute and uniform
// locations resolved once after linking. Any location may be NoLocation,
// in which case the matching setter or attribute is skipped.
type ShaderProgram struct {
	ctx  *Context
	prog Program

	attrPos int32
	attrNor int32
	attrCol int32

	unifModel          int32
	unifModelInvTr     int32
	unifViewProj       int32
	unifBaseColor      int32
	unifSecondaryColor int32
	unifTertiaryColor  int32
	unifTime           int32
	unifPersistence    int32
	unifAmplitude      int32
	unifFrequency      int32
	unifOctaves        int32
}

// NewShaderProgram compiles every stage and links them. It fails with
// *CompileError on the first stage that does not compile and with
// *LinkError when linking fails; no device objects are leaked either way.
func NewShaderProgram(ctx *Context, sources []ShaderSource) (*ShaderProgram, error) {
	dev := ctx.Device

	shaders := make([]Shader, 0, len(sources))
	defer func() {
		for _, s := range shaders {
			dev.DeleteShader(s)
		}
	}()

	for _, src := range sources {
		s := dev.CreateShader(src.Stage)
		shaders = append(shaders, s)
		dev.ShaderSource(s, src.Source)
		dev.CompileShader(s)
		if !dev.ShaderCompiled(s) {
			return nil, &CompileError{Stage: src.Stage, Log: dev.ShaderInfoLog(s)}
		}
	}

	prog := dev.CreateProgram()
	for _, s := range shaders {
		dev.AttachShader(prog, s)
	}
	dev.LinkProgram(prog)
	if !dev.ProgramLinked(prog) {
		log := dev.ProgramInfoLog(prog)
		dev.DeleteProgram(prog)
		return nil, &LinkError{Log: log}
	}

	return &ShaderProgram{
		ctx:  ctx,
		prog: prog,

		attrPos: dev.AttribLocation(prog, AttrPosition),
		attrNor: dev.AttribLocation(prog, AttrNormal),
		attrCol: dev.AttribLocation(prog, AttrColor),

		unifModel:          dev.UniformLocation(prog, UniformModel),
		unifModelInvTr:     dev.UniformLocation(prog, UniformModelInvTr),
		unifViewProj:       dev.UniformLocation(prog, UniformViewProj),
		unifBaseColor:      dev.UniformLocation(prog, UniformBaseColor),
		unifSecondaryColor: dev.UniformLocation(prog, UniformSecondaryColor),
		unifTertiaryColor:  dev.UniformLocation(prog, UniformTertiaryColor),
		unifTime:           dev.UniformLocation(prog, UniformTime),
		unifPersistence:    dev.UniformLocation(prog, UniformPersistence),
		unifAmplitude:      dev.UniformLocation(prog, UniformAmplitude),
		unifFrequency:      dev.UniformLocation(prog, UniformFrequency),
		unifOctaves:        dev.UniformLocation(prog, UniformOctaves),
	}, nil
}

// Handle returns the device program name.
func (p *ShaderProgram) Handle() Program {
	return p.prog
}

// Use activates the program; it is a no-op when the program is already
// active on this context.
func (p *ShaderProgram) Use() {
	p.ctx.useProgram(p.prog)
}

// SetModelMatrix uploads model and its inverse-transpose.
func (p *ShaderProgram) SetModelMatrix(model math.Mat4) {
	p.Use()
	if p.unifModel != NoLocation {
		p.ctx.Device.UniformMatrix4(p.unifModel, model.Elements())
	}
	if p.unifModelInvTr != NoLocation {
		p.ctx.Device.UniformMatrix4(p.unifModelInvTr, model.InverseTranspose().Elements())
	}
}

func (p *ShaderProgram) SetViewProjMatrix(vp math.Mat4) {
	p.setMatrix(p.unifViewProj, vp)
}

func (p *ShaderProgram) SetBaseColor(c core.Color) {
	p.setColor(p.unifBaseColor, c)
}

func (p *ShaderProgram) SetSecondaryColor(c core.Color) {
	p.setColor(p.unifSecondaryColor, c)
}

func (p *ShaderProgram) SetTertiaryColor(c core.Color) {
	p.setColor(p.unifTertiaryColor, c)
}

func (p *ShaderProgram) SetTime(t float32) {
	p.setFloat(p.unifTime, t)
}

func (p *ShaderProgram) SetPersistence(v float32) {
	p.setFloat(p.unifPersistence, v)
}

func (p *ShaderProgram) SetAmplitude(v float32) {
	p.setFloat(p.unifAmplitude, v)
}

func (p *ShaderProgram) SetFrequency(v float32) {
	p.setFloat(p.unifFrequency, v)
}

func (p *ShaderProgram) SetOctaves(n int) {
	p.Use()
	if p.unifOctaves != NoLocation {
		p.ctx.Device.Uniform1i(p.unifOctaves, int32(n))
	}
}

func (p *ShaderProgram) setMatrix(loc int32, m math.Mat4) {
	p.Use()
	if loc != NoLocation {
		p.ctx.Device.UniformMatrix4(loc, m.Elements())
	}
}

func (p *ShaderProgram) setColor(loc int32, c core.Color) {
	p.Use()
	if loc != NoLocation {
		p.ctx.Device.Uniform4f(loc, c.R, c.G, c.B, c.A)
	}
}

func (p *ShaderProgram) setFloat(loc int32, v float32) {
	p.Use()
	if loc != NoLocation {
		p.ctx.Device.Uniform1f(loc, v)
	}
}

// Draw binds d's attribute buffers to the program's inputs and submits one
// indexed draw. Attributes the program does not read, or the drawable does
// not have, are left disabled.
func (p *ShaderProgram) Draw(d *Drawable) {
	p.Use()
	dev := p.ctx.Device

	var enabled []int32
	enable := func(loc int32, bind func() bool) {
		if loc != NoLocation && bind() {
			dev.EnableVertexAttribArray(loc)
			dev.VertexAttribPointer(loc, 4)
			enabled = append(enabled, loc)
		}
	}
	enable(p.attrPos, d.BindPositions)
	enable(p.attrNor, d.BindNormals)
	enable(p.attrCol, d.BindColors)

	if d.BindIndices() && d.ElementCount() > 0 {
		dev.DrawElements(d.DrawMode(), d.ElementCount())
	}

	for _, loc := range enabled {
		dev.DisableVertexAttribArray(loc)
	}
}

// Destroy deletes the device program.
func (p *ShaderProgram) Destroy() {
	if p.prog == 0 {
		return
	}
	p.ctx.Device.DeleteProgram(p.prog)
	p.ctx.forgetProgram(p.prog)
	p.prog = 0
}
