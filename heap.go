package prism

// ResourceHeapDescriptor binds resources to the slots of a pipeline
// layout. Resources holds one entry per layout binding, in layout
// order; passing a multiple of the binding count packs several
// descriptor sets into one heap.
type ResourceHeapDescriptor struct {
	Label     string
	Layout    PipelineLayout
	Resources []Resource
}

// ResourceHeap is a bound set of textures, samplers and buffers
// matching a pipeline layout.
type ResourceHeap interface {
	Resource

	// NumSets returns how many descriptor sets the heap packs.
	NumSets() uint32
}
