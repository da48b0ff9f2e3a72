package reservation

import "github.com/jellomark/reservation-service/pkg/txmanager"

// DBExecutor интерфейс для работы с БД (общий для *sql.DB и *sql.Tx)
type DBExecutor = txmanager.DBExecutor
