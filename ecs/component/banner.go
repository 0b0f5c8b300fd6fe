package component

// Banner is a caption drawn across the top of the screen, usually raised by a
// cue script and paired with a TTL.
type Banner struct {
	Text string
}

var BannerComponent = NewComponent[Banner]()
