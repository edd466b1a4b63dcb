package common

type Module string

const (
	ModuleMinter     Module = "minter"
	ModuleCollection Module = "collection"
)

func (m Module) String() string {
	return string(m)
}
