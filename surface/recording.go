// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "image/color"

// CommandType identifies the kind of a recorded command.
type CommandType uint8

// Command types.
const (
	CmdClear CommandType = iota
	CmdDrawQuads
	CmdDrawSprite
	CmdDisplay
)

// String returns the command name.
func (t CommandType) String() string {
	switch t {
	case CmdClear:
		return "Clear"
	case CmdDrawQuads:
		return "DrawQuads"
	case CmdDrawSprite:
		return "DrawSprite"
	case CmdDisplay:
		return "Display"
	default:
		return "Unknown"
	}
}

// Command is one recorded drawing operation. Only the fields of its Type
// are set.
type Command struct {
	Type CommandType

	// Color is the fill color of a Clear.
	Color color.NRGBA

	// Vertices and Texture are the arguments of a DrawQuads. Vertices is
	// a copy owned by the command.
	Vertices []Vertex
	Texture  *Texture

	// Sprite is the argument of a DrawSprite.
	Sprite Sprite
}

// Recorder is a Surface that records every operation while rendering it
// to an ImageSurface. The recording can be inspected or played back onto
// another surface.
//
//	rec := surface.NewRecorder(640, 400)
//	term.Render(rec)
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type)
//	}
type Recorder struct {
	*ImageSurface
	commands []Command
}

// NewRecorder creates a recording surface with the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{ImageSurface: NewImageSurface(width, height)}
}

// Clear records and performs a Clear.
func (r *Recorder) Clear(c color.Color) {
	r.record(Command{Type: CmdClear, Color: color.NRGBAModel.Convert(c).(color.NRGBA)})
	r.ImageSurface.Clear(c)
}

// DrawQuads records and performs a DrawQuads.
func (r *Recorder) DrawQuads(vertices []Vertex, tex *Texture) {
	r.record(Command{Type: CmdDrawQuads, Vertices: append([]Vertex(nil), vertices...), Texture: tex})
	r.ImageSurface.DrawQuads(vertices, tex)
}

// DrawSprite records and performs a DrawSprite.
func (r *Recorder) DrawSprite(s Sprite) {
	r.record(Command{Type: CmdDrawSprite, Sprite: s})
	r.ImageSurface.DrawSprite(s)
}

// Display records and performs a Display.
func (r *Recorder) Display() {
	r.record(Command{Type: CmdDisplay})
	r.ImageSurface.Display()
}

func (r *Recorder) record(cmd Command) {
	if r.closed {
		return
	}
	r.commands = append(r.commands, cmd)
}

// Commands returns the recorded commands in order. The slice is owned by
// the recorder.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns the number of recorded commands of type t.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type == t {
			n++
		}
	}
	return n
}

// Reset discards the recording. The rendered image is kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Playback replays the recording onto dst.
func (r *Recorder) Playback(dst Surface) {
	for _, cmd := range r.commands {
		switch cmd.Type {
		case CmdClear:
			dst.Clear(cmd.Color)
		case CmdDrawQuads:
			dst.DrawQuads(cmd.Vertices, cmd.Texture)
		case CmdDrawSprite:
			dst.DrawSprite(cmd.Sprite)
		case CmdDisplay:
			dst.Display()
		}
	}
}

var _ Surface = (*Recorder)(nil)
