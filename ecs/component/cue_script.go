package component

// CueScript names a tengo script run on every phase edge of the entity's
// cinematic.
type CueScript struct {
	Path string
}

var CueScriptComponent = NewComponent[CueScript]()
