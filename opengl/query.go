package opengl

import (
	"fmt"

	"github.com/oliverbestmann/prism"
)

// QueryHeap groups driver queries of one type.
type QueryHeap struct {
	sys    *System
	handle Handle
	label  string

	typ    prism.QueryType
	target uint32
	ids    []uint32
}

var _ prism.QueryHeap = (*QueryHeap)(nil)

func newQueryHeap(sys *System, desc prism.QueryHeapDescriptor) (*QueryHeap, error) {
	api := sys.api
	count := max(desc.Count, 1)

	h := &QueryHeap{
		sys:    sys,
		label:  desc.Label,
		typ:    desc.Type,
		target: queryTargetToGL(desc.Type),
		ids:    make([]uint32, count),
	}
	for i := range h.ids {
		h.ids[i] = api.GenQuery()
	}
	if err := checkError(api, "create query heap"); err != nil {
		h.release(api)
		return nil, err
	}
	return h, nil
}

func (h *QueryHeap) release(api API) {
	for _, id := range h.ids {
		if id != 0 {
			api.DeleteQuery(id)
		}
	}
	h.ids = nil
}

func (h *QueryHeap) query(i uint32) (uint32, error) {
	if i >= uint32(len(h.ids)) {
		return 0, fmt.Errorf("query %d of a heap with %d: %w", i, len(h.ids), prism.ErrIndexOutOfRange)
	}
	return h.ids[i], nil
}

func (h *QueryHeap) Label() string         { return h.label }
func (h *QueryHeap) SetLabel(label string) { h.label = label }

func (h *QueryHeap) Type() prism.QueryType { return h.typ }
func (h *QueryHeap) Count() uint32         { return uint32(len(h.ids)) }

// Result blocks until query i finished on the device.
func (h *QueryHeap) Result(i uint32) (uint64, error) {
	id, err := h.query(i)
	if err != nil {
		return 0, err
	}
	return h.sys.api.QueryResult(id), nil
}
