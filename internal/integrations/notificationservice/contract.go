package notificationservice

// Logger интерфейс логгера для клиента
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
