package interfaces

type NameProvider interface {
	Name(female bool) (firstName string, lastName string)
}
