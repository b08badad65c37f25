package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the prefix of all json endpoints.
	APIPath = RootPath + "api"
)
