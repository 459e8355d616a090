// Package vista is a character-cell terminal UI toolkit built around a tree
// of rectangular views.
//
// Each View owns a frame expressed in its parent's coordinate space. Frames
// are either set explicitly or computed each layout pass from positional
// expressions (Pos and Dim values) that can reference the container's extent
// or a sibling view's frame. The layout engine resolves computed frames in
// dependency order and reports cycles as fatal errors.
//
// Rendering is damage driven: views accumulate a dirty region (bounding-box
// union) and ancestors track whether any descendant is dirty, so a redraw
// pass touches only the affected subtrees. Input is routed through a focus
// chain with three key-dispatch phases (hot key, focused, cold key) and
// front-to-back mouse hit-testing with an optional application-wide grab.
//
// The toolkit draws through a pluggable console Driver. The drivers/tcell
// and drivers/ansi packages provide production backends; MockDriver backs
// the tests.
package vista
