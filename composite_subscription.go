package observable

// CompositeSubscription cancels a group of subscriptions together.
// The zero value is ready to use.
type CompositeSubscription struct {
	hooks
}

// Add puts subscription in the group. If the group is already
// unsubscribed, subscription is unsubscribed right away.
func (sub *CompositeSubscription) Add(subscription Subscription) {
	sub.hooks.Add(subscription.Unsubscribe)
}

func (sub *CompositeSubscription) IsSubscribed() bool {
	return !sub.isFinished()
}

func (sub *CompositeSubscription) Unsubscribe() {
	sub.callHooks()
}
