package order

// Status is the backend's authoritative status string for an order. The
// vocabulary mixes order statuses with the delivery tracker's, so several
// aliases land on the same display step.
type Status string

const (
	StatusProcessing     Status = "processing"
	StatusShipped        Status = "shipped"
	StatusPickedUp       Status = "picked_up"
	StatusInTransit      Status = "in_transit"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDeliveryFailed Status = "delivery_failed"
	StatusDelivered      Status = "delivered"
)

// Step is one stage of the fixed 4-step progress display.
type Step struct {
	Label    string `json:"label"`
	Complete bool   `json:"complete"`
}

var stepLabels = [...]string{
	"Order Confirmed",
	"Shipped/Picked Up",
	"In Transit",
	"Delivered",
}

// statusStep maps each canonical status to the highest display step it
// reaches. delivery_failed deliberately sits at the In Transit step: the
// tracker treats it as a retryable sub-state, not a regression. Adding a
// new backend status is a one-line edit here.
var statusStep = map[Status]int{
	StatusProcessing:     0,
	StatusShipped:        1,
	StatusPickedUp:       1,
	StatusInTransit:      2,
	StatusOutForDelivery: 2,
	StatusDeliveryFailed: 2,
	StatusDelivered:      3,
}

// Known reports whether the status belongs to the canonical vocabulary.
func (s Status) Known() bool {
	_, ok := statusStep[s]
	return ok
}

// StepIndex returns the display step the status has reached, or -1 for an
// unrecognized status, which renders every step as pending.
func StepIndex(s Status) int {
	if idx, ok := statusStep[s]; ok {
		return idx
	}
	return -1
}

// Steps derives the display projection for a status: step i is complete
// iff i <= StepIndex(s). Pure function of the status, recomputed on every
// fetch.
func Steps(s Status) []Step {
	reached := StepIndex(s)

	steps := make([]Step, len(stepLabels))
	for i, label := range stepLabels {
		steps[i] = Step{Label: label, Complete: i <= reached}
	}
	return steps
}
