package engine

import (
	"fmt"

	"github.com/observeinc/obship/internal/domain"
	"github.com/observeinc/obship/internal/ports"
)

// notify resolves every item in the batch with the same outcome value.
// A transport failure fails the whole batch, not individual items.
func (e *Engine) notify(batch *domain.Batch, err error) {
	for _, item := range batch.Items {
		e.resolve(item, err)
	}
}

// resolve resolves one item's handle and invokes its callback, if any, with
// the same value. A panic raised by the callback is recovered and logged;
// it never propagates and never prevents sibling items from being notified.
func (e *Engine) resolve(item *domain.Item, err error) {
	item.Handle.Resolve(err)

	if item.Callback == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("record callback panicked", ports.Err(fmt.Errorf("%v", r)))
		}
	}()
	item.Callback(err)
}
