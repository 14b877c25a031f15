// Package domain holds the value objects that gate what may enter storage.
package domain

// NewSubscriber is a validated name/email pair waiting to be persisted.
type NewSubscriber struct {
	Name  SubscriberName
	Email SubscriberEmail
}

// NewSubscriberFromForm parses the name first, then the email, and returns
// the first validation failure.
func NewSubscriberFromForm(name, email string) (NewSubscriber, error) {
	n, err := ParseSubscriberName(name)
	if err != nil {
		return NewSubscriber{}, err
	}

	e, err := ParseSubscriberEmail(email)
	if err != nil {
		return NewSubscriber{}, err
	}

	return NewSubscriber{Name: n, Email: e}, nil
}
