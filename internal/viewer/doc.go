// Package viewer implements the lightbox state machine: a focused overlay for
// stepping through an ordered list of media items.
//
// A [Viewer] moves through four states (Closed, Loading, Ready, Failed) with
// an orthogonal fullscreen flag. Navigation is circular and serialized by the
// caller's event loop; every index change bumps a load generation so a slow
// load resolving after the user has moved on cannot clobber the current
// frame. Fullscreen and scroll lock are acquired and released in strict
// open/close pairs through a [Platform].
package viewer
