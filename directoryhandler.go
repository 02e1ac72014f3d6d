package exifcore

// directoryTracker is the shared bookkeeping every concrete TiffHandler
// embeds: the flat list of directories produced by the walk, in
// discovery order, and a stack tracking which directory is currently
// open. The Make lookup for makernote dispatch does not use the stack:
// it goes through ifd0(), which searches the output list.
type directoryTracker struct {
	all   []*Directory
	stack []*Directory
}

// PushDirectory implements the bookkeeping half of TiffHandler.PushDirectory.
// Concrete handlers call this from their own PushDirectory before doing
// handler-specific work.
func (t *directoryTracker) PushDirectory(dir *Directory) {
	t.all = append(t.all, dir)
	t.stack = append(t.stack, dir)
}

// popDirectory removes the innermost directory from the stack once the
// walker has finished it. Safe to call on an empty stack.
func (t *directoryTracker) popDirectory() {
	if len(t.stack) == 0 {
		return
	}
	t.stack = t.stack[:len(t.stack)-1]
}

// current returns the directory currently being walked, or nil if none.
func (t *directoryTracker) current() *Directory {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

// ifd0 returns the first root directory produced so far (EXIF IFD0 or,
// for Panasonic RAW files, the Panasonic RAW IFD0), or nil. Vendor
// makernote dispatch needs its Make/Model tags, which are always
// walked before any SubIFD or MakerNote is entered.
func (t *directoryTracker) ifd0() *Directory {
	for _, d := range t.all {
		if d.Kind() == KindIFD0 || d.Kind() == KindPanasonicRawIFD0 {
			return d
		}
	}
	return nil
}

// attach appends an already-populated directory (built outside the
// walker's own push/pop sequencing, e.g. a PrintIM or GeoTIFF block) to
// the output list without disturbing the handler stack.
func (t *directoryTracker) attach(dir *Directory) {
	t.all = append(t.all, dir)
}

// Directories returns every directory produced by the walk, in
// discovery order.
func (t *directoryTracker) Directories() []*Directory {
	return t.all
}
