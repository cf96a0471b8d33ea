package domain

import "time"

// SystemLogType classifica a entrada de auditoria
type SystemLogType string

const (
	SystemLogInfo    SystemLogType = "info"
	SystemLogWarning SystemLogType = "warning"
	SystemLogError   SystemLogType = "error"
	SystemLogSuccess SystemLogType = "success"
)

// SystemLog é uma entrada de auditoria append-only gravada por toda operação de
// mutação. Entradas nunca são alteradas ou removidas; a listagem retorna apenas
// as 100 mais recentes.
type SystemLog struct {
	ID        string        `json:"id"`
	Action    string        `json:"action"`
	Details   string        `json:"details"`
	Type      SystemLogType `json:"type"`
	UserEmail string        `json:"user_email"`
	UserID    int           `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
}
