package experience

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
)

// CartItem is one line of the decorative cart widget. Insertion order is
// display order.
type CartItem struct {
	LineID     string  `json:"line_id"` // unique per line, assigned on add
	ID         string  `json:"id"`      // product id; numeric ids mirror to the server cart
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Collection string  `json:"collection"`
	Emoji      string  `json:"emoji"`
}

// Storage keys. The persisted value is the JSON array of items, the same
// payload the storefront keeps under its localStorage key.
const (
	cartObject   = "skyyrose_cart"
	cartProperty = "items"
)

// CartMirror mirrors cart additions to the server-side cart. Implemented
// by the wpajax client; nil disables mirroring.
type CartMirror interface {
	AddToCart(ctx context.Context, productID int) error
	Offline() bool
}

// CartStore is an ordered list of cart items persisted on every mutation.
//
// Persistence is best effort: with a nil gdata manager, or after a storage
// failure, the store degrades to memory-only for the session and the cart
// widget keeps working. Server mirroring is fire-and-forget and never
// rolls back a local mutation.
type CartStore struct {
	m      *gdata.Manager // nil = memory-only
	items  []CartItem
	bus    *Bus
	mirror CartMirror

	mirrorTimeout time.Duration
}

// NewCartStore creates a store and hydrates it from persisted state.
// A corrupt persisted payload is discarded with a warning and the cart
// starts empty. bus and mirror may be nil.
func NewCartStore(m *gdata.Manager, bus *Bus, mirror CartMirror) *CartStore {
	cs := &CartStore{
		m:             m,
		items:         []CartItem{},
		bus:           bus,
		mirror:        mirror,
		mirrorTimeout: 5 * time.Second,
	}
	cs.hydrate()
	return cs
}

func (cs *CartStore) hydrate() {
	if cs.m == nil || !cs.m.ObjectPropExists(cartObject, cartProperty) {
		return
	}
	data, err := cs.m.LoadObjectProp(cartObject, cartProperty)
	if err != nil {
		log.Printf("[CartStore] warning: failed to load persisted cart: %v (starting empty)", err)
		return
	}
	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("[CartStore] warning: corrupt persisted cart discarded: %v", err)
		return
	}
	if items != nil {
		cs.items = items
	}
	log.Printf("[CartStore] hydrated %d item(s) from storage", len(cs.items))
}

// AddItem appends item to the cart, persists, publishes the cart-updated
// event, and mirrors the addition server-side when the item carries a
// numeric product id. Returns the stored item with its assigned line id.
func (cs *CartStore) AddItem(item CartItem) CartItem {
	if item.LineID == "" {
		item.LineID = uuid.NewString()
	}
	cs.items = append(cs.items, item)
	cs.persist()
	cs.publishUpdate()
	cs.mirrorAdd(item)
	return item
}

// RemoveItem removes the line at index. Out-of-range indexes are a no-op.
func (cs *CartStore) RemoveItem(index int) {
	if index < 0 || index >= len(cs.items) {
		return
	}
	cs.items = append(cs.items[:index], cs.items[index+1:]...)
	cs.persist()
	cs.publishUpdate()
}

// Clear empties the cart and persists the empty list.
func (cs *CartStore) Clear() {
	cs.items = []CartItem{}
	cs.persist()
	cs.publishUpdate()
}

// Items returns a defensive copy of the cart lines in display order.
func (cs *CartStore) Items() []CartItem {
	cp := make([]CartItem, len(cs.items))
	copy(cp, cs.items)
	return cp
}

// Len returns the number of cart lines.
func (cs *CartStore) Len() int {
	return len(cs.items)
}

// Total returns the sum of line prices.
func (cs *CartStore) Total() float64 {
	total := 0.0
	for _, it := range cs.items {
		total += it.Price
	}
	return total
}

// persist writes the full item list to storage. The in-memory list and the
// persisted list are identical immediately after every mutation; a write
// failure degrades the store to memory-only behavior for that call and is
// only logged.
func (cs *CartStore) persist() {
	if cs.m == nil {
		return
	}
	data, err := json.Marshal(cs.items)
	if err != nil {
		log.Printf("[CartStore] warning: failed to encode cart: %v", err)
		return
	}
	if err := cs.m.SaveObjectProp(cartObject, cartProperty, data); err != nil {
		log.Printf("[CartStore] warning: failed to persist cart: %v (cart is memory-only)", err)
	}
}

func (cs *CartStore) publishUpdate() {
	if cs.bus == nil {
		return
	}
	cs.bus.Publish(TopicCartUpdated, CartUpdatedEvent{Items: cs.Items()})
}

// mirrorAdd fires the server-side cart mirror without blocking the frame
// loop. Failures are logged and swallowed; local storage stays the source
// of truth for the widget.
func (cs *CartStore) mirrorAdd(item CartItem) {
	if cs.mirror == nil || cs.mirror.Offline() {
		return
	}
	productID, err := strconv.Atoi(item.ID)
	if err != nil {
		return // decorative item without a real product id
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cs.mirrorTimeout)
		defer cancel()
		if err := cs.mirror.AddToCart(ctx, productID); err != nil {
			log.Printf("[CartStore] server cart sync failed for product %d: %v", productID, err)
		}
	}()
}
