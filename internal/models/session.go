package models

// Session - учетные данные оператора, переданные браузером
type Session struct {
	Token        string
	OperatorName string
}
