package event

import "github.com/avlko/GMA-BookingService/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов к базе данных
type DBExecutor = dbmetrics.DBExecutor
