package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	AccountAlreadyRegisteredCode    = 1001
	AccountAlreadyRegisteredMessage = "account already registered and verified"
	AccountNotFoundCode             = 1002
	AccountNotFoundMessage          = "account not found"
	AccountAlreadyVerifiedCode      = 1003
	AccountAlreadyVerifiedMessage   = "account already verified"
	CodeExpiredCode                 = 1004
	CodeExpiredMessage              = "verification code expired, request a new one"
	InvalidCodeCode                 = 1005
	InvalidCodeMessage              = "invalid verification code"
	AccountNotVerifiedCode          = 1006
	AccountNotVerifiedMessage       = "verify your email before login"
	InvalidCredentialsCode          = 1007
	InvalidCredentialsMessage       = "invalid credentials"
	NotificationFailedCode          = 1008
	NotificationFailedMessage       = "failed to send verification email"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case AccountAlreadyRegisteredCode:
		errorStruct.ErrorCode = AccountAlreadyRegisteredCode
		errorStruct.ErrorMessage = AccountAlreadyRegisteredMessage
	case AccountNotFoundCode:
		errorStruct.ErrorCode = AccountNotFoundCode
		errorStruct.ErrorMessage = AccountNotFoundMessage
	case AccountAlreadyVerifiedCode:
		errorStruct.ErrorCode = AccountAlreadyVerifiedCode
		errorStruct.ErrorMessage = AccountAlreadyVerifiedMessage
	case CodeExpiredCode:
		errorStruct.ErrorCode = CodeExpiredCode
		errorStruct.ErrorMessage = CodeExpiredMessage
	case InvalidCodeCode:
		errorStruct.ErrorCode = InvalidCodeCode
		errorStruct.ErrorMessage = InvalidCodeMessage
	case AccountNotVerifiedCode:
		errorStruct.ErrorCode = AccountNotVerifiedCode
		errorStruct.ErrorMessage = AccountNotVerifiedMessage
	case InvalidCredentialsCode:
		errorStruct.ErrorCode = InvalidCredentialsCode
		errorStruct.ErrorMessage = InvalidCredentialsMessage
	case NotificationFailedCode:
		errorStruct.ErrorCode = NotificationFailedCode
		errorStruct.ErrorMessage = NotificationFailedMessage
	}

	return errorStruct
}
