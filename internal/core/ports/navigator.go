package ports

// Navigator moves the client to another view. Paths are route-tree paths such
// as "/login" or "/student/dashboard".
type Navigator interface {
	Navigate(path string)
}
