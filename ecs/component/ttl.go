package component

// TTL destroys its entity after Frames update ticks. Banners raised by cue
// scripts carry one.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
