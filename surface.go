package prism

// Surface is a presentable drawing area provided by the application,
// typically a window. The package never creates windows itself.
type Surface interface {
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)

	// SwapBuffers presents the back buffer.
	SwapBuffers()
}
