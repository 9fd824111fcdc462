package logs

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Entry is one persisted HTTP request/response record. Every request that
// reaches the API is written here by the request-logging middleware.
type Entry struct {
	ID         ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"_id"`
	Message    string    `gorm:"type:varchar(255)" json:"message"`
	Level      string    `gorm:"type:varchar(10);default:'info';index:idx_logs_level" json:"level"`
	Endpoint   string    `gorm:"type:varchar(255);index:idx_logs_endpoint" json:"endpoint"`
	Method     string    `gorm:"type:varchar(10)" json:"method"`
	StatusCode int       `json:"status_code,omitempty"`
	UserID     *int      `json:"userid,omitempty"`
	DurationMs int64     `json:"duration_ms,omitempty"`
	Timestamp  time.Time `gorm:"index:idx_logs_timestamp;not null" json:"timestamp"`
}

func (Entry) TableName() string {
	return "logs"
}
