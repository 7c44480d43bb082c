// Package prism is a thin abstraction over hardware graphics APIs. The
// package itself carries only descriptors, object interfaces and the
// driver registry; backends such as opengl/gl33 and opengl/gles31
// register themselves through Register and are selected by name with
// Open.
package prism
