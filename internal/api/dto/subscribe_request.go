package dto

// SubscribeRequest is the form body of POST /subscriptions.
//
// Fields are pointers so that a missing key can be told apart from an
// empty value: the first is a malformed request, the second is invalid input.
type SubscribeRequest struct {
	Name  *string `form:"name" validate:"required"`
	Email *string `form:"email" validate:"required"`
}
