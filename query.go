package prism

// QueryType selects what a query heap measures.
type QueryType uint8

const (
	QuerySamplesPassed QueryType = iota
	QueryAnySamplesPassed
	QueryPrimitivesGenerated
	QueryTimeElapsed
)

// QueryHeapDescriptor describes a group of queries of one type.
type QueryHeapDescriptor struct {
	Label string
	Type  QueryType
	// Count of 0 allocates a single query.
	Count uint32
}

// QueryHeap holds GPU queries. Results are fetched per query index.
type QueryHeap interface {
	Resource

	Type() QueryType
	Count() uint32

	// Result blocks until query index i is available and returns its
	// value. Samples and primitives are counts, time is nanoseconds.
	Result(i uint32) (uint64, error)
}
