package auth

import "errors"

// Типизированные виды отказов. Наружу HTTP-слой отдаёт только текст
// сообщения (единый 400), но in-process вызывающие могут различать виды
// через errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrToken              = errors.New("token issue failed")

	// ErrUserNotFound возвращает Store, когда активный пользователь с таким
	// username отсутствует. До клиента не доходит — маппится на
	// ErrInvalidCredentials, чтобы не раскрывать, что именно неверно.
	ErrUserNotFound = errors.New("user not found")
)

// Error несёт вид отказа и человекочитаемое сообщение. Error() возвращает
// только сообщение — именно оно уходит клиенту; вид доступен через errors.Is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, msg string) error { return &Error{Kind: kind, Message: msg} }

// Тексты сообщений сохранены как в исходном API.
const (
	msgDetailsRequired = "User details and role are required"
	msgArchivedRole    = "One or more selected roles have been archived. Please contact system administrator"
	msgUserExists      = "User Already exists. Please Log in"
	msgBadCredentials  = "Incorrect Username or Password"
	msgTokenFailed     = "Unable to create Token. Please contact system administrator"
)
