package presentation

const (
	AuthKey = "Authorization"

	// Echo context keys set by the identity middleware.
	CallerIDKey    = "caller_id"
	CallerEmailKey = "caller_email"

	// Route parameter names.
	ContentIDParam = "contentId"
	ReviewIDParam  = "reviewId"

	ReasonTag = "X-Reason"
)
