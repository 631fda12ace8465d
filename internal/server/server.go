package server

// Server объединяет HTTP-обработчики: JSON API предсказаний и HTML-форму.
// Оба вызывают один и тот же сервис синхронно на каждый submit.
type Server struct {
	PredictionServer
	FormServer
}

func NewServer(
	predictionServer PredictionServer,
	formServer FormServer,
) Server {
	return Server{
		PredictionServer: predictionServer,
		FormServer:       formServer,
	}
}
