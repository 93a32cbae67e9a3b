package domain

const (
	ProgressStep = 20
	ProgressMax  = 100
)

// Checkpoint is one of the five named stages shown on the tracking
// screen. A checkpoint is completed once progress reaches its threshold.
type Checkpoint struct {
	Name      string
	Threshold int
}

var Checkpoints = []Checkpoint{
	{Name: "Order Received", Threshold: 20},
	{Name: "Preparing", Threshold: 40},
	{Name: "Cooking", Threshold: 60},
	{Name: "Quality Check", Threshold: 80},
	{Name: "Ready for Pickup", Threshold: 100},
}

func (c Checkpoint) Reached(progress int) bool {
	return progress >= c.Threshold
}
