package domain

// Buffer is the ordered accumulation buffer for queued items.
// It maintains the invariant that Bytes() equals the sum of the payload
// lengths of the items currently queued.
type Buffer struct {
	items []*Item
	bytes int
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds an item to the end of the buffer and grows the byte counter
// by the item's payload length.
func (b *Buffer) Append(item *Item) {
	b.items = append(b.items, item)
	b.bytes += len(item.Payload)
}

// Len returns the number of items currently queued.
func (b *Buffer) Len() int {
	return len(b.items)
}

// Bytes returns the running byte counter.
func (b *Buffer) Bytes() int {
	return b.bytes
}

// Empty returns true if the buffer has no items.
func (b *Buffer) Empty() bool {
	return len(b.items) == 0
}

// Items returns the queued items in submission order. The caller must not
// mutate the returned slice.
func (b *Buffer) Items() []*Item {
	return b.items
}

// Detach moves the buffered items into a new Batch and resets the buffer in
// one step. Concurrently arriving items begin filling the fresh buffer while
// the detached batch is transmitted. The caller must serialize Detach with
// Append.
func (b *Buffer) Detach() *Batch {
	batch := &Batch{
		Items:      b.items,
		TotalBytes: b.bytes,
	}
	b.items = nil
	b.bytes = 0
	return batch
}

// Batch is an ordered group of items detached from a Buffer and transmitted
// together in one request.
type Batch struct {
	// Items preserve original submission order.
	Items []*Item

	// TotalBytes is the sum of the items' payload lengths, computed once at
	// detach time.
	TotalBytes int
}

// Size returns the number of items in the batch.
func (b *Batch) Size() int {
	return len(b.Items)
}

// Empty returns true if the batch has no items.
func (b *Batch) Empty() bool {
	return len(b.Items) == 0
}

// Payload returns the concatenation of the items' serialized payloads in
// submission order. The result has exactly TotalBytes bytes.
func (b *Batch) Payload() []byte {
	body := make([]byte, 0, b.TotalBytes)
	for _, item := range b.Items {
		body = append(body, item.Payload...)
	}
	return body
}
