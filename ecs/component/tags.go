package component

type UFOTag struct{}

var UFOTagComponent = NewComponent[UFOTag]()
