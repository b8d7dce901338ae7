package reservation

// Reason is the stable key of a failed validation. Clients translate it for display.
type Reason string

const (
	ShopNotLoaded  Reason = "error.reservation.shop_not_loaded"
	NotOpenDay     Reason = "error.reservation.not_open_day"
	NotOpenTime    Reason = "error.reservation.not_open_time"
	EndBeforeStart Reason = "error.reservation.end_before_start"
	TooShort       Reason = "error.reservation.too_short"
	TooLong        Reason = "error.reservation.too_long"
	Overbooked     Reason = "error.reservation.overlap"
	PastTime       Reason = "error.reservation.past_time"
)

// Result is the outcome of a validation: either valid, or invalid with a reason
// and the values needed to format its message.
type Result struct {
	Valid  bool           `json:"valid"`
	Reason Reason         `json:"reason,omitempty"`
	Params map[string]int `json:"params,omitempty"`
}

// Valid returns a passing result
func Valid() Result {
	return Result{Valid: true}
}

// Invalid returns a failing result
func Invalid(reason Reason) Result {
	return Result{Reason: reason}
}

func invalidWith(reason Reason, key string, value int) Result {
	return Result{Reason: reason, Params: map[string]int{key: value}}
}
