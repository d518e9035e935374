package apierrors

const (
	MsgFailListTask       = "errorListTask"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgEmptyTaskTitle     = "emptyTaskTitle"
	MsgInvalidDate        = "invalidDate"
	MsgInvalidViewParams  = "invalidViewParams"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailPersistTask    = "failPersistTask"

	MsgNoSession          = "noSession"
	MsgFailSession        = "failSession"
	MsgInvalidUserPayload = "invalidUserPayload"
	MsgEmailTaken         = "emailTaken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgPasswordMismatch   = "passwordMismatch"
	MsgFailSignup         = "failSignup"

	MsgInvalidTheme = "invalidTheme"
	MsgFailTheme    = "failTheme"
)
