package component

// Name makes an entity discoverable with ecs.FindByName.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
