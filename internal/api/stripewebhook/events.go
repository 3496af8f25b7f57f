package stripewebhooks

// eventKind is the finite set of Stripe event types the reconciler handles.
// Everything else maps to eventIgnored and is acknowledged without writes.
type eventKind int

const (
	eventIgnored eventKind = iota
	eventCheckoutCompleted
	eventSubscriptionDeleted
)

func parseEventKind(eventType string) eventKind {
	switch eventType {
	case "checkout.session.completed":
		return eventCheckoutCompleted
	case "customer.subscription.deleted":
		return eventSubscriptionDeleted
	default:
		return eventIgnored
	}
}
