package service

// Keys of the durable store layout.
const (
	TasksKey       = "tasks"
	UsersKey       = "users"
	CurrentUserKey = "currentUser"
	ThemeKey       = "theme"

	// corruptSuffix names the key that keeps an unreadable payload aside
	// before the store falls back to an empty collection.
	corruptSuffix = ".corrupt"
)
