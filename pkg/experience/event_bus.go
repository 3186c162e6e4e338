package experience

// Event topics. These mirror the storefront's DOM custom events so widget
// code reads the same on both sides.
const (
	TopicProductClick = "skyyrose:product-click"
	TopicCartUpdated  = "skyyrose:cart:updated"
)

// ProductClickEvent is published when a product hotspot is activated.
type ProductClickEvent struct {
	Index      int
	Collection string
}

// CartUpdatedEvent is published after every cart mutation so other widgets
// can re-render counts and totals.
type CartUpdatedEvent struct {
	Items []CartItem
}

// Bus is a synchronous publish/subscribe dispatcher shared by the scenes
// and widgets of one page. It replaces the storefront's window.* globals
// with an explicit registry constructed once and passed to whoever needs
// it.
//
// Dispatch is synchronous and single-threaded; publishers and subscribers
// all live on the frame loop.
type Bus struct {
	handlers map[string][]func(payload any)
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]func(payload any))}
}

// Subscribe registers fn for topic. Subscribers are invoked in
// registration order.
func (b *Bus) Subscribe(topic string, fn func(payload any)) {
	b.handlers[topic] = append(b.handlers[topic], fn)
}

// Publish delivers payload to every subscriber of topic, synchronously.
func (b *Bus) Publish(topic string, payload any) {
	for _, fn := range b.handlers[topic] {
		fn(payload)
	}
}
