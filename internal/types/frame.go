package types

// Frame collects the argument types of one call expression while its
// argument list is parsed.
type Frame struct {
	Args []Type
}

// Add records the type of the next argument.
func (f *Frame) Add(t Type) {
	f.Args = append(f.Args, t)
}

// Len returns the number of arguments seen.
func (f *Frame) Len() int {
	return len(f.Args)
}

// FrameStack holds one Frame per call being parsed, so that a call nested in
// another call's arguments counts its own arguments.
type FrameStack struct {
	frames []*Frame
}

// Push starts a new frame and returns it.
func (fs *FrameStack) Push() *Frame {
	f := &Frame{}
	fs.frames = append(fs.frames, f)
	return f
}

// Pop removes and returns the innermost frame, or nil if there is none.
func (fs *FrameStack) Pop() *Frame {
	n := len(fs.frames)
	if n == 0 {
		return nil
	}
	f := fs.frames[n-1]
	fs.frames[n-1] = nil
	fs.frames = fs.frames[:n-1]
	return f
}

// Top returns the innermost frame, or nil.
func (fs *FrameStack) Top() *Frame {
	if n := len(fs.frames); n > 0 {
		return fs.frames[n-1]
	}
	return nil
}

// Depth returns the number of open frames.
func (fs *FrameStack) Depth() int {
	return len(fs.frames)
}
